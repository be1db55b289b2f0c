package ports

import (
	"context"
	"time"

	"github.com/Osama-oo1909415/hall-booking/internal/domain"
)

// ReservationRepo владеет расписанием зала. InsertIfNoConflict проверяет
// пересечения и вставляет бронь одним атомарным шагом; при занятом слоте
// возвращает *domain.ConflictError.
type ReservationRepo interface {
	InsertIfNoConflict(ctx context.Context, r *domain.Reservation) error
	DeleteByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListAll(ctx context.Context) ([]*domain.Reservation, error)
	ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error)
	Ping(ctx context.Context) error
}
