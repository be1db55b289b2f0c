package ports

type ReservationMetrics interface {
	ReservationCreated()
	ReservationRejected(reason string)
	ReservationDeleted()
}
