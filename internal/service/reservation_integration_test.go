package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Osama-oo1909415/hall-booking/internal/booking"
	"github.com/Osama-oo1909415/hall-booking/internal/domain"
	"github.com/Osama-oo1909415/hall-booking/internal/repository/memory"
	"github.com/Osama-oo1909415/hall-booking/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMemoryService(t *testing.T, now time.Time) *ReservationService {
	t.Helper()
	metrics := mocks.NewMockReservationMetrics(t)
	metrics.EXPECT().ReservationCreated().Return().Maybe()
	metrics.EXPECT().ReservationDeleted().Return().Maybe()
	metrics.EXPECT().ReservationRejected(mock.Anything).Return().Maybe()

	return NewReservationService(
		memory.NewReservationRepo(), metrics,
		booking.NewNormalizer(now.Location()).WithClock(booking.FixedClock(now)), booking.FixedClock(now), newTestLogger(t),
	)
}

func TestReservationService_RoundTrip(t *testing.T) {
	loc := qatar(t)
	svc := newMemoryService(t, time.Date(2025, 1, 1, 8, 0, 0, 0, loc))
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateReservationInput{
		Title:         "Design review",
		OrganizerName: "Noor",
		Start:         "2025-01-03T10:00",
		End:           "2025-01-03T11:30",
	})
	require.NoError(t, err)

	day, err := svc.ListForDay(ctx, "2025-01-03")
	require.NoError(t, err)
	require.Len(t, day.Reservations, 1)
	assert.Equal(t, created, day.Reservations[0])
	assert.Equal(t, 90, day.OccupiedMinutes)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestReservationService_OvernightAcrossDays(t *testing.T) {
	loc := qatar(t)
	svc := newMemoryService(t, time.Date(2025, 1, 1, 8, 0, 0, 0, loc))
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateReservationInput{Title: "Dinner", OrganizerName: "A", Start: "2025-01-01 20:00", End: "2025-01-01 23:00"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateReservationInput{Title: "Late show", OrganizerName: "B", Start: "2025-01-01 23:00", End: "2025-01-01 01:00"})
	require.NoError(t, err, "touching endpoints do not conflict")

	d1, err := svc.ListForDay(ctx, "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, 2, d1.Count)
	assert.Equal(t, 240, d1.OccupiedMinutes)

	d2, err := svc.ListForDay(ctx, "2025-01-02")
	require.NoError(t, err)
	assert.Equal(t, 1, d2.Count)
	assert.Equal(t, 60, d2.OccupiedMinutes)
}

func TestReservationService_ConcurrentCreates(t *testing.T) {
	loc := qatar(t)
	svc := newMemoryService(t, time.Date(2025, 1, 1, 8, 0, 0, 0, loc))
	ctx := context.Background()

	inputs := []domain.CreateReservationInput{
		{Title: "First", OrganizerName: "A", Start: "2025-01-02 10:00", End: "2025-01-02 12:00"},
		{Title: "Second", OrganizerName: "B", Start: "2025-01-02 11:00", End: "2025-01-02 13:00"},
	}

	var (
		wg   sync.WaitGroup
		errs = make([]error, len(inputs))
	)
	for i := range inputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(ctx, inputs[i])
		}(i)
	}
	wg.Wait()

	ok, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrConflict):
			conflicts++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, conflicts)
}
