package scheduler

import (
	"context"
	"time"

	"github.com/Osama-oo1909415/hall-booking/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type todayReader interface {
	Today(ctx context.Context) (domain.DayView, error)
}

type occupancyGauge interface {
	SetOccupancy(count, minutes int)
}

// Scheduler периодически пересчитывает загрузку зала за текущий день.
type Scheduler struct {
	reservationService todayReader
	gauge              occupancyGauge
	interval           time.Duration
	logger             logger.Logger
}

func New(
	reservationService todayReader,
	gauge occupancyGauge,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		gauge:              gauge,
		interval:           interval,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	day, err := s.reservationService.Today(ctx)
	if err != nil {
		s.logger.Error("failed to refresh occupancy",
			logger.String("error", err.Error()),
		)
		return
	}

	s.gauge.SetOccupancy(day.Count, day.OccupiedMinutes)
	s.logger.Debug("occupancy refreshed",
		logger.String("date", day.Date),
		logger.Int("reservations", day.Count),
		logger.Int("occupied_minutes", day.OccupiedMinutes),
	)
}
