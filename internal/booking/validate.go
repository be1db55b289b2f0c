package booking

import (
	"regexp"
	"strings"
	"time"

	"github.com/Osama-oo1909415/hall-booking/internal/domain"
)

const MaxDuration = 6 * time.Hour

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Validator struct {
	normalizer *Normalizer
}

func NewValidator(n *Normalizer) *Validator {
	return &Validator{normalizer: n}
}

// Validate проверяет кандидата по правилам бронирования и возвращает
// нормализованный интервал. Ошибку определяет первое нарушенное правило.
func (v *Validator) Validate(in domain.CreateReservationInput, now time.Time) (domain.Interval, error) {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.OrganizerName) == "" ||
		strings.TrimSpace(in.Start) == "" ||
		strings.TrimSpace(in.End) == "" {
		return domain.Interval{}, domain.ErrMissingField
	}

	if !ValidEmail(in.OrganizerEmail) {
		return domain.Interval{}, domain.ErrInvalidEmail
	}

	start, err := v.normalizer.Normalize(in.Start)
	if err != nil {
		return domain.Interval{}, err
	}
	end, err := v.normalizer.Normalize(in.End)
	if err != nil {
		return domain.Interval{}, err
	}
	end = ApplyRollover(start, end)

	// время броней хранится с точностью до минуты
	if start.Before(now.Truncate(time.Minute)) {
		return domain.Interval{}, domain.ErrPastBooking
	}
	if !end.After(start) {
		return domain.Interval{}, domain.ErrNonPositiveDuration
	}
	if end.Sub(start) > MaxDuration {
		return domain.Interval{}, domain.ErrDurationExceeded
	}

	return domain.Interval{Start: start, End: end}, nil
}

// ValidEmail пропускает пустой адрес: поле необязательное.
func ValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	return email == "" || emailPattern.MatchString(email)
}
