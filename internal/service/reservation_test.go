package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Osama-oo1909415/hall-booking/internal/booking"
	"github.com/Osama-oo1909415/hall-booking/internal/domain"
	"github.com/Osama-oo1909415/hall-booking/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func qatar(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Qatar")
	require.NoError(t, err)
	return loc
}

type fixture struct {
	repo    *mocks.MockReservationRepo
	metrics *mocks.MockReservationMetrics
	svc     *ReservationService
	loc     *time.Location
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	loc := qatar(t)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, loc)

	repo := mocks.NewMockReservationRepo(t)
	metrics := mocks.NewMockReservationMetrics(t)
	clock := booking.FixedClock(now)
	svc := NewReservationService(repo, metrics, booking.NewNormalizer(loc).WithClock(clock), clock, newTestLogger(t))

	return &fixture{repo: repo, metrics: metrics, svc: svc, loc: loc, now: now}
}

func input(start, end string) domain.CreateReservationInput {
	return domain.CreateReservationInput{
		Title:          "  Quarterly review ",
		OrganizerName:  "Khalid",
		OrganizerEmail: "khalid@example.qa",
		Start:          start,
		End:            end,
	}
}

func TestReservationService_Create_Success(t *testing.T) {
	f := newFixture(t)

	var stored *domain.Reservation
	f.repo.EXPECT().InsertIfNoConflict(mock.Anything, mock.Anything).
		Run(func(_ context.Context, r *domain.Reservation) { stored = r }).
		Return(nil)
	f.metrics.EXPECT().ReservationCreated().Return()

	res, err := f.svc.Create(context.Background(), input("2025-01-01 22:00", "2025-01-01 01:00"))

	require.NoError(t, err)
	assert.Same(t, stored, res)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "Quarterly review", res.Title)
	assert.Equal(t, "Khalid", res.OrganizerName)
	assert.Equal(t, time.Date(2025, 1, 1, 22, 0, 0, 0, f.loc), res.StartAt)
	assert.Equal(t, time.Date(2025, 1, 2, 1, 0, 0, 0, f.loc), res.EndAt)
	assert.True(t, f.now.Equal(res.CreatedAt))
}

func TestReservationService_Create_ValidationRejected(t *testing.T) {
	f := newFixture(t)

	f.metrics.EXPECT().ReservationRejected("past_booking").Return()

	_, err := f.svc.Create(context.Background(), input("2025-01-01 11:59", "2025-01-01 13:00"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPastBooking)
	f.repo.AssertNotCalled(t, "InsertIfNoConflict", mock.Anything, mock.Anything)
}

func TestReservationService_Create_StartingNowAccepted(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().InsertIfNoConflict(mock.Anything, mock.Anything).Return(nil)
	f.metrics.EXPECT().ReservationCreated().Return()

	_, err := f.svc.Create(context.Background(), input("2025-01-01 12:00", "2025-01-01 18:00"))

	require.NoError(t, err)
}

func TestReservationService_Create_TimeOnlyUsesToday(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().InsertIfNoConflict(mock.Anything, mock.Anything).Return(nil)
	f.metrics.EXPECT().ReservationCreated().Return()

	res, err := f.svc.Create(context.Background(), input("14:30", "16:00"))

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 14, 30, 0, 0, f.loc), res.StartAt)
	assert.Equal(t, time.Date(2025, 1, 1, 16, 0, 0, 0, f.loc), res.EndAt)
}

func TestReservationService_Create_GarbageTimeIsMalformed(t *testing.T) {
	f := newFixture(t)

	f.metrics.EXPECT().ReservationRejected("malformed_time").Return()

	_, err := f.svc.Create(context.Background(), input("1/", "2025-01-01 16:00"))

	assert.ErrorIs(t, err, domain.ErrMalformedTime)
}

func TestReservationService_Create_Conflict(t *testing.T) {
	f := newFixture(t)

	existing := &domain.Reservation{
		ID:      "existing",
		Title:   "All hands",
		StartAt: time.Date(2025, 1, 1, 13, 0, 0, 0, f.loc),
		EndAt:   time.Date(2025, 1, 1, 15, 0, 0, 0, f.loc),
	}
	f.repo.EXPECT().InsertIfNoConflict(mock.Anything, mock.Anything).
		Return(&domain.ConflictError{Existing: existing})
	f.metrics.EXPECT().ReservationRejected("conflict").Return()

	_, err := f.svc.Create(context.Background(), input("2025-01-01 14:00", "2025-01-01 16:00"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)

	var ce *domain.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Same(t, existing, ce.Existing)
}

func TestReservationService_Create_StoreUnavailable(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().InsertIfNoConflict(mock.Anything, mock.Anything).
		Return(errors.Join(domain.ErrStoreUnavailable, errors.New("connection reset")))
	f.metrics.EXPECT().ReservationRejected("store_unavailable").Return()

	_, err := f.svc.Create(context.Background(), input("2025-01-01 14:00", "2025-01-01 16:00"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestReservationService_Delete(t *testing.T) {
	f := newFixture(t)

	deleted := &domain.Reservation{ID: "r1"}
	f.repo.EXPECT().DeleteByID(mock.Anything, "r1").Return(deleted, nil).Once()
	f.repo.EXPECT().DeleteByID(mock.Anything, "r1").Return(nil, domain.ErrReservationNotFound).Once()
	f.metrics.EXPECT().ReservationDeleted().Return().Once()

	res, err := f.svc.Delete(context.Background(), "r1")
	require.NoError(t, err)
	assert.Same(t, deleted, res)

	_, err = f.svc.Delete(context.Background(), "r1")
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	_, err := f.svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_ListForDay(t *testing.T) {
	f := newFixture(t)

	dayStart := time.Date(2025, 1, 5, 0, 0, 0, 0, f.loc)
	dayEnd := time.Date(2025, 1, 6, 0, 0, 0, 0, f.loc)
	late := &domain.Reservation{ID: "late", StartAt: time.Date(2025, 1, 5, 23, 0, 0, 0, f.loc), EndAt: time.Date(2025, 1, 6, 1, 0, 0, 0, f.loc)}
	early := &domain.Reservation{ID: "early", StartAt: time.Date(2025, 1, 5, 20, 0, 0, 0, f.loc), EndAt: time.Date(2025, 1, 5, 23, 0, 0, 0, f.loc)}

	f.repo.EXPECT().ListOverlapping(mock.Anything, dayStart, dayEnd).
		Return([]*domain.Reservation{late, early}, nil)

	day, err := f.svc.ListForDay(context.Background(), "2025-01-05")

	require.NoError(t, err)
	assert.Equal(t, "2025-01-05", day.Date)
	assert.Equal(t, 2, day.Count)
	assert.Equal(t, "early", day.Reservations[0].ID)
	assert.Equal(t, 240, day.OccupiedMinutes)
}

func TestReservationService_ListForDay_DefaultsToToday(t *testing.T) {
	f := newFixture(t)

	dayStart := time.Date(2025, 1, 1, 0, 0, 0, 0, f.loc)
	f.repo.EXPECT().ListOverlapping(mock.Anything, dayStart, dayStart.AddDate(0, 0, 1)).Return(nil, nil)

	day, err := f.svc.Today(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", day.Date)
	assert.Zero(t, day.Count)
}

func TestReservationService_ListForDay_BadDate(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ListForDay(context.Background(), "01/05/2025")

	assert.ErrorIs(t, err, domain.ErrMalformedTime)
}

func TestReservationService_ListForDay_RepoError(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().ListOverlapping(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.Join(domain.ErrStoreUnavailable, errors.New("timeout")))

	_, err := f.svc.ListForDay(context.Background(), "2025-01-05")

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestReservationService_FormDefaults(t *testing.T) {
	f := newFixture(t)

	start, end := f.svc.FormDefaults()

	assert.Equal(t, "2025-01-01T12:00", start)
	assert.Equal(t, "2025-01-01T13:00", end)
}
