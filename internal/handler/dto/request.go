package dto

import "github.com/Osama-oo1909415/hall-booking/internal/domain"

// CreateReservationRequest без binding-правил: обязательность полей и форматы
// проверяет booking.Validator.
type CreateReservationRequest struct {
	Title          string `json:"title"`
	OrganizerName  string `json:"organizer_name"`
	OrganizerEmail string `json:"organizer_email"`
	Start          string `json:"start"`
	End            string `json:"end"`
}

func (r CreateReservationRequest) ToInput() domain.CreateReservationInput {
	return domain.CreateReservationInput{
		Title:          r.Title,
		OrganizerName:  r.OrganizerName,
		OrganizerEmail: r.OrganizerEmail,
		Start:          r.Start,
		End:            r.End,
	}
}
