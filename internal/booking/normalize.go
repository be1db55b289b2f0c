package booking

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/Osama-oo1909415/hall-booking/internal/domain"
)

const (
	DayLayout     = "2006-01-02"
	MinuteLayout  = "2006-01-02 15:04"
	DateTimeLocal = "2006-01-02T15:04"
)

var layouts = []string{
	MinuteLayout,
	DateTimeLocal,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02 15:04",
}

// только время: дата берётся из текущего дня зала
var timeOnlyLayouts = []string{
	"15:04",
	"15:04:05",
}

// minYear отсекает мусор, который dateparse разбирает в нулевой год ("1/").
const minYear = 1900

// Normalizer разбирает пользовательский ввод во время в часовом поясе зала.
// Зона или смещение во входной строке игнорируются.
type Normalizer struct {
	loc   *time.Location
	clock Clock
}

func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{loc: loc, clock: SystemClock{Location: loc}}
}

// WithClock задаёт часы, по которым дополняется ввод без даты.
func (n *Normalizer) WithClock(c Clock) *Normalizer {
	n.clock = c
	return n
}

func (n *Normalizer) Location() *time.Location {
	return n.loc
}

func (n *Normalizer) Normalize(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, domain.ErrMalformedTime
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return n.anchor(t), nil
		}
	}

	for _, layout := range timeOnlyLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			today := n.clock.Now().In(n.loc)
			return time.Date(today.Year(), today.Month(), today.Day(), t.Hour(), t.Minute(), 0, 0, n.loc), nil
		}
	}

	t, err := dateparse.ParseIn(raw, n.loc)
	if err != nil || t.Year() < minYear {
		return time.Time{}, domain.ErrMalformedTime
	}
	return n.anchor(t), nil
}

// anchor сохраняет настенное время с точностью до минуты и переносит его в n.loc.
func (n *Normalizer) anchor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, n.loc)
}

// ParseDay возвращает [полночь, следующая полночь) для даты YYYY-MM-DD.
func (n *Normalizer) ParseDay(text string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(DayLayout, strings.TrimSpace(text), n.loc)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrMalformedTime
	}
	return start, start.AddDate(0, 0, 1), nil
}

// DayOf возвращает границы дня, которому принадлежит t.
func (n *Normalizer) DayOf(t time.Time) (time.Time, time.Time) {
	t = t.In(n.loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, n.loc)
	return start, start.AddDate(0, 0, 1)
}

// ApplyRollover переносит end на следующий день, если дата совпадает со start,
// а время конца раньше времени начала. Применяется один раз.
func ApplyRollover(start, end time.Time) time.Time {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy != ey || sm != em || sd != ed {
		return end
	}
	if timeOfDay(end) < timeOfDay(start) {
		return end.AddDate(0, 0, 1)
	}
	return end
}

func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}
