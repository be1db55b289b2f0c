package booking

import (
	"testing"
	"time"

	"github.com/Osama-oo1909415/hall-booking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qatar(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Qatar")
	require.NoError(t, err)
	return loc
}

func TestNormalizer_Normalize_Layouts(t *testing.T) {
	loc := qatar(t)
	n := NewNormalizer(loc)
	want := time.Date(2025, 1, 1, 22, 0, 0, 0, loc)

	tests := []struct {
		name string
		raw  string
	}{
		{"space separated", "2025-01-01 22:00"},
		{"datetime-local", "2025-01-01T22:00"},
		{"with seconds", "2025-01-01 22:00:59"},
		{"surrounding whitespace", "  2025-01-01T22:00  "},
		{"offset ignored", "2025-01-01T22:00:00Z"},
		{"foreign offset ignored", "2025-01-01T22:00:00-05:00"},
		{"slashes", "2025/01/01 22:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Normalize(tt.raw)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
			assert.Equal(t, loc, got.Location())
		})
	}
}

func TestNormalizer_Normalize_Malformed(t *testing.T) {
	n := NewNormalizer(qatar(t))

	for _, raw := range []string{"", "   ", "not a date", "soon", "1/"} {
		_, err := n.Normalize(raw)
		assert.ErrorIs(t, err, domain.ErrMalformedTime, raw)
	}
}

func TestNormalizer_Normalize_TimeOnly(t *testing.T) {
	loc := qatar(t)
	// 23:30 UTC 31 декабря уже 1 января в Дохе
	n := NewNormalizer(loc).WithClock(FixedClock(time.Date(2024, 12, 31, 23, 30, 0, 0, time.UTC)))

	tests := []struct {
		raw  string
		want time.Time
	}{
		{"14:30", time.Date(2025, 1, 1, 14, 30, 0, 0, loc)},
		{" 09:05:42 ", time.Date(2025, 1, 1, 9, 5, 0, 0, loc)},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := n.Normalize(tt.raw)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestNormalizer_Normalize_RejectsImplausibleYear(t *testing.T) {
	n := NewNormalizer(qatar(t))

	got, err := n.Normalize("1/")

	assert.ErrorIs(t, err, domain.ErrMalformedTime)
	assert.True(t, got.IsZero())
}

func TestNormalizer_ParseDay(t *testing.T) {
	loc := qatar(t)
	n := NewNormalizer(loc)

	start, end, err := n.ParseDay("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, loc), end)

	_, _, err = n.ParseDay("10/03/2025")
	assert.ErrorIs(t, err, domain.ErrMalformedTime)
}

func TestNormalizer_DayOf(t *testing.T) {
	loc := qatar(t)
	n := NewNormalizer(loc)

	// 22:30 UTC is already the next day in Doha
	start, end := n.DayOf(time.Date(2025, 3, 10, 22, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, loc), end)
}

func TestApplyRollover(t *testing.T) {
	loc := qatar(t)
	at := func(d, h, m int) time.Time { return time.Date(2025, 1, d, h, m, 0, 0, loc) }

	tests := []struct {
		name       string
		start, end time.Time
		want       time.Time
	}{
		{"crosses midnight", at(1, 22, 0), at(1, 1, 0), at(2, 1, 0)},
		{"same day forward", at(1, 9, 0), at(1, 10, 0), at(1, 10, 0)},
		{"equal times untouched", at(1, 9, 0), at(1, 9, 0), at(1, 9, 0)},
		{"different dates untouched", at(1, 22, 0), at(3, 1, 0), at(3, 1, 0)},
		{"end on earlier date untouched", at(2, 10, 0), at(1, 9, 0), at(1, 9, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyRollover(tt.start, tt.end))
		})
	}
}
