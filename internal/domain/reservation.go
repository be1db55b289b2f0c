package domain

import (
	"math"
	"time"
)

type Reservation struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	OrganizerName  string    `json:"organizer_name"`
	OrganizerEmail string    `json:"organizer_email,omitempty"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	CreatedAt      time.Time `json:"created_at"`
}

func (r *Reservation) Interval() Interval {
	return Interval{Start: r.StartAt, End: r.EndAt}
}

// Interval это полуоткрытый промежуток [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// CreateReservationInput это сырой ввод до нормализации.
type CreateReservationInput struct {
	Title          string
	OrganizerName  string
	OrganizerEmail string
	Start          string
	End            string
}

type DayView struct {
	Date            string
	DayStart        time.Time
	DayEnd          time.Time
	Reservations    []*Reservation
	Count           int
	OccupiedMinutes int
}

// HoursBooked только для отображения.
func (d DayView) HoursBooked() float64 {
	return math.Round(float64(d.OccupiedMinutes)/60*100) / 100
}
