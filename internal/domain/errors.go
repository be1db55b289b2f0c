package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")

	ErrMissingField        = fmt.Errorf("%w: title, organizer name, start and end are required", ErrValidation)
	ErrInvalidEmail        = fmt.Errorf("%w: invalid organizer email", ErrValidation)
	ErrMalformedTime       = fmt.Errorf("%w: malformed date or time", ErrValidation)
	ErrPastBooking         = fmt.Errorf("%w: start time is in the past", ErrValidation)
	ErrNonPositiveDuration = fmt.Errorf("%w: end time must be after start time", ErrValidation)
	ErrDurationExceeded    = fmt.Errorf("%w: reservation exceeds the maximum duration", ErrValidation)
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrConflict            = errors.New("reservation conflicts with an existing one")
	ErrStoreUnavailable    = errors.New("reservation store unavailable")
)

// ConflictError несёт бронь, которая заняла слот.
type ConflictError struct {
	Existing *Reservation
}

func (e *ConflictError) Error() string {
	if e.Existing == nil {
		return ErrConflict.Error()
	}
	return fmt.Sprintf("%s: %q (%s - %s)", ErrConflict.Error(), e.Existing.Title,
		e.Existing.StartAt.Format("2006-01-02 15:04"), e.Existing.EndAt.Format("2006-01-02 15:04"))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// ReasonCode сводит ошибку к стабильному коду для клиентов.
func ReasonCode(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrInvalidEmail):
		return "invalid_email"
	case errors.Is(err, ErrMalformedTime):
		return "malformed_time"
	case errors.Is(err, ErrPastBooking):
		return "past_booking"
	case errors.Is(err, ErrNonPositiveDuration):
		return "non_positive_duration"
	case errors.Is(err, ErrDurationExceeded):
		return "duration_exceeded"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrReservationNotFound):
		return "not_found"
	case errors.Is(err, ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "internal"
	}
}
