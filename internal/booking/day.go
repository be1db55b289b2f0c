package booking

import (
	"sort"
	"time"

	"github.com/Osama-oo1909415/hall-booking/internal/domain"
)

// ForDay отбирает брони, видимые в [dayStart, dayEnd), и суммирует занятые
// внутри окна минуты.
func ForDay(dayStart, dayEnd time.Time, reservations []*domain.Reservation) domain.DayView {
	day := domain.Interval{Start: dayStart, End: dayEnd}

	visible := make([]*domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r != nil && Overlaps(r.Interval(), day) {
			visible = append(visible, r)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].StartAt.Equal(visible[j].StartAt) {
			return visible[i].ID < visible[j].ID
		}
		return visible[i].StartAt.Before(visible[j].StartAt)
	})

	total := 0
	for _, r := range visible {
		total += clippedMinutes(r.Interval(), day)
	}

	return domain.DayView{
		Date:            dayStart.Format(DayLayout),
		DayStart:        dayStart,
		DayEnd:          dayEnd,
		Reservations:    visible,
		Count:           len(visible),
		OccupiedMinutes: total,
	}
}

func clippedMinutes(r, day domain.Interval) int {
	start := r.Start
	if day.Start.After(start) {
		start = day.Start
	}
	end := r.End
	if day.End.Before(end) {
		end = day.End
	}
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start) / time.Minute)
}
