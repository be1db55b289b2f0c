package dto

import (
	"time"

	"github.com/Osama-oo1909415/hall-booking/internal/booking"
	"github.com/Osama-oo1909415/hall-booking/internal/domain"
)

type ReservationResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	OrganizerName  string `json:"organizer_name"`
	OrganizerEmail string `json:"organizer_email,omitempty"`
	StartAt        string `json:"start_at"`
	EndAt          string `json:"end_at"`
	Day            string `json:"day"`
	CreatedAt      string `json:"created_at"`
}

type DayResponse struct {
	Date            string                `json:"date"`
	Reservations    []ReservationResponse `json:"reservations"`
	Count           int                   `json:"count"`
	OccupiedMinutes int                   `json:"occupied_minutes"`
	HoursBooked     float64               `json:"hours_booked"`
}

type DefaultsResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

type ErrorResponse struct {
	Error    string               `json:"error"`
	Code     string               `json:"code,omitempty"`
	Conflict *ReservationResponse `json:"conflict,omitempty"`
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:             r.ID,
		Title:          r.Title,
		OrganizerName:  r.OrganizerName,
		OrganizerEmail: r.OrganizerEmail,
		StartAt:        r.StartAt.Format(time.RFC3339),
		EndAt:          r.EndAt.Format(time.RFC3339),
		Day:            r.StartAt.Format(booking.DayLayout),
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

func ToDayResponse(d domain.DayView) DayResponse {
	reservations := make([]ReservationResponse, 0, len(d.Reservations))
	for _, r := range d.Reservations {
		reservations = append(reservations, ToReservationResponse(r))
	}

	return DayResponse{
		Date:            d.Date,
		Reservations:    reservations,
		Count:           d.Count,
		OccupiedMinutes: d.OccupiedMinutes,
		HoursBooked:     d.HoursBooked(),
	}
}
