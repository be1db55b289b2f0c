// Package memory хранит брони в памяти процесса. Проверка пересечений и
// вставка выполняются под одной блокировкой.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Osama-oo1909415/hall-booking/internal/booking"
	"github.com/Osama-oo1909415/hall-booking/internal/domain"
)

type ReservationRepository struct {
	mu    sync.RWMutex
	items []*domain.Reservation
	byID  map[string]*domain.Reservation
}

func NewReservationRepo() *ReservationRepository {
	return &ReservationRepository{
		byID: make(map[string]*domain.Reservation),
	}
}

func (r *ReservationRepository) InsertIfNoConflict(ctx context.Context, res *domain.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing := booking.FindConflict(res.Interval(), r.items, ""); existing != nil {
		return &domain.ConflictError{Existing: clone(existing)}
	}

	stored := clone(res)
	r.items = append(r.items, stored)
	r.byID[stored.ID] = stored

	return nil
}

func (r *ReservationRepository) DeleteByID(ctx context.Context, id string) (*domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	delete(r.byID, id)

	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}

	return clone(res), nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	return clone(res), nil
}

func (r *ReservationRepository) ListAll(ctx context.Context) ([]*domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Reservation, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, clone(item))
	}
	return out, nil
}

func (r *ReservationRepository) ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	window := domain.Interval{Start: from, End: to}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Reservation
	for _, item := range r.items {
		if booking.Overlaps(item.Interval(), window) {
			out = append(out, clone(item))
		}
	}
	return out, nil
}

func (r *ReservationRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

// наружу отдаём только копии
func clone(r *domain.Reservation) *domain.Reservation {
	c := *r
	return &c
}
