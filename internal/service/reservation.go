package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/Osama-oo1909415/hall-booking/internal/booking"
	"github.com/Osama-oo1909415/hall-booking/internal/domain"
	"github.com/Osama-oo1909415/hall-booking/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultSlot = time.Hour

type ReservationService struct {
	repo       ports.ReservationRepo
	metrics    ports.ReservationMetrics
	normalizer *booking.Normalizer
	validator  *booking.Validator
	clock      booking.Clock
	logger     logger.Logger
}

func NewReservationService(
	repo ports.ReservationRepo,
	metrics ports.ReservationMetrics,
	normalizer *booking.Normalizer,
	clock booking.Clock,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		repo:       repo,
		metrics:    metrics,
		normalizer: normalizer,
		validator:  booking.NewValidator(normalizer),
		clock:      clock,
		logger:     logger,
	}
}

func (s *ReservationService) Create(ctx context.Context, in domain.CreateReservationInput) (*domain.Reservation, error) {
	now := s.clock.Now().In(s.normalizer.Location())

	interval, err := s.validator.Validate(in, now)
	if err != nil {
		s.metrics.ReservationRejected(domain.ReasonCode(err))
		return nil, err
	}

	res := &domain.Reservation{
		ID:             uuid.New().String(),
		Title:          strings.TrimSpace(in.Title),
		OrganizerName:  strings.TrimSpace(in.OrganizerName),
		OrganizerEmail: strings.TrimSpace(in.OrganizerEmail),
		StartAt:        interval.Start,
		EndAt:          interval.End,
		CreatedAt:      now,
	}

	if err = s.repo.InsertIfNoConflict(ctx, res); err != nil {
		s.metrics.ReservationRejected(domain.ReasonCode(err))

		var conflict *domain.ConflictError
		if errors.As(err, &conflict) && conflict.Existing != nil {
			s.logger.Info("reservation rejected: slot taken",
				logger.String("start_at", res.StartAt.Format(booking.MinuteLayout)),
				logger.String("end_at", res.EndAt.Format(booking.MinuteLayout)),
				logger.String("conflicting_id", conflict.Existing.ID),
			)
		} else if !errors.Is(err, domain.ErrConflict) {
			s.logger.Error("failed to insert reservation",
				logger.String("error", err.Error()),
			)
		}
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.metrics.ReservationCreated()
	s.logger.Info("reservation created",
		logger.String("reservation_id", res.ID),
		logger.String("start_at", res.StartAt.Format(booking.MinuteLayout)),
		logger.String("end_at", res.EndAt.Format(booking.MinuteLayout)),
	)

	return res, nil
}

func (s *ReservationService) Delete(ctx context.Context, id string) (*domain.Reservation, error) {
	res, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete reservation: %w", err)
	}

	s.metrics.ReservationDeleted()
	s.logger.Info("reservation deleted",
		logger.String("reservation_id", id),
	)

	return res, nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

// ListForDay собирает брони дня date (YYYY-MM-DD); пустая строка означает сегодня.
func (s *ReservationService) ListForDay(ctx context.Context, date string) (domain.DayView, error) {
	var dayStart, dayEnd time.Time
	if strings.TrimSpace(date) == "" {
		dayStart, dayEnd = s.normalizer.DayOf(s.clock.Now())
	} else {
		var err error
		if dayStart, dayEnd, err = s.normalizer.ParseDay(date); err != nil {
			return domain.DayView{}, err
		}
	}

	reservations, err := s.repo.ListOverlapping(ctx, dayStart, dayEnd)
	if err != nil {
		return domain.DayView{}, fmt.Errorf("list reservations: %w", err)
	}

	return booking.ForDay(dayStart, dayEnd, reservations), nil
}

func (s *ReservationService) Today(ctx context.Context) (domain.DayView, error) {
	return s.ListForDay(ctx, "")
}

// FormDefaults предлагает слот на ближайший час в формате datetime-local.
func (s *ReservationService) FormDefaults() (string, string) {
	now := s.clock.Now().In(s.normalizer.Location()).Truncate(time.Minute)
	return now.Format(booking.DateTimeLocal), now.Add(defaultSlot).Format(booking.DateTimeLocal)
}

func (s *ReservationService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
