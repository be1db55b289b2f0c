// Package metrics содержит prometheus-коллекторы сервиса бронирования зала.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hall_booking"

var (
	reservationOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_total",
			Help:      "Reservation attempts by outcome and rejection reason",
		},
		[]string{"outcome", "reason"},
	)
	reservationsToday = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reservations_today",
			Help:      "Number of reservations touching the current day",
		},
	)
	occupiedMinutesToday = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "occupied_minutes_today",
			Help:      "Booked minutes of the current day",
		},
	)
)

const (
	outcomeCreated  = "created"
	outcomeRejected = "rejected"
	outcomeDeleted  = "deleted"
)

// Recorder пишет бизнес-метрики в глобальный реестр prometheus.
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (Recorder) ReservationCreated() {
	reservationOutcomes.WithLabelValues(outcomeCreated, "").Inc()
}

func (Recorder) ReservationRejected(reason string) {
	reservationOutcomes.WithLabelValues(outcomeRejected, reason).Inc()
}

func (Recorder) ReservationDeleted() {
	reservationOutcomes.WithLabelValues(outcomeDeleted, "").Inc()
}

// SetOccupancy обновляет загрузку зала за сегодня.
func (Recorder) SetOccupancy(count, minutes int) {
	reservationsToday.Set(float64(count))
	occupiedMinutesToday.Set(float64(minutes))
}
