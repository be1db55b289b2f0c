package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/Osama-oo1909415/hall-booking/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// hallLockKey сериализует все вставки в расписание зала.
const hallLockKey int64 = 0x4841_4c4c

const exclusionViolation = "23P01"

const reservationColumns = `id, title, organizer_name, organizer_email, start_at, end_at, created_at`

type ReservationRepository struct {
	db       *dbpg.DB
	loc      *time.Location
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB, loc *time.Location) *ReservationRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &ReservationRepository{
		db:  db,
		loc: loc,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) InsertIfNoConflict(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable("begin tx", err)
	}
	defer tx.Rollback()

	// Только один писатель проверяет пересечения за раз
	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, hallLockKey); err != nil {
		return unavailable("acquire hall lock", err)
	}

	conflictQuery := `SELECT ` + reservationColumns + `
					  FROM reservations
					  WHERE start_at < $2 AND end_at > $1
					  ORDER BY start_at
					  LIMIT 1`
	existing, err := r.scanOne(tx.QueryRowContext(ctx, conflictQuery, res.StartAt, res.EndAt))
	switch {
	case err == nil:
		return &domain.ConflictError{Existing: existing}
	case !errors.Is(err, domain.ErrReservationNotFound):
		return unavailable("check conflict", err)
	}

	insertQuery := `INSERT INTO reservations (` + reservationColumns + `)
					VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.ExecContext(
		ctx, insertQuery, res.ID, res.Title, res.OrganizerName,
		nullString(res.OrganizerEmail), res.StartAt, res.EndAt, res.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == exclusionViolation {
			return r.conflictAfterViolation(ctx, res)
		}
		return unavailable("insert reservation", err)
	}

	if err = tx.Commit(); err != nil {
		return unavailable("commit", err)
	}
	return nil
}

// conflictAfterViolation находит строку, из-за которой сработал EXCLUDE.
func (r *ReservationRepository) conflictAfterViolation(ctx context.Context, res *domain.Reservation) error {
	found, err := r.ListOverlapping(ctx, res.StartAt, res.EndAt)
	if err != nil || len(found) == 0 {
		return &domain.ConflictError{}
	}
	return &domain.ConflictError{Existing: found[0]}
}

func (r *ReservationRepository) DeleteByID(ctx context.Context, id string) (*domain.Reservation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrReservationNotFound
	}

	query := `DELETE FROM reservations WHERE id = $1 RETURNING ` + reservationColumns
	res, err := r.scanOne(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return nil, err
		}
		return nil, unavailable("delete reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrReservationNotFound
	}

	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, unavailable("get reservation", err)
	}

	res, err := r.scanOne(row)
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return nil, err
		}
		return nil, unavailable("scan reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) ListAll(ctx context.Context) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY start_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, unavailable("list reservations", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *ReservationRepository) ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE start_at < $2 AND end_at > $1
			  ORDER BY start_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to)
	if err != nil {
		return nil, unavailable("list overlapping reservations", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *ReservationRepository) Ping(ctx context.Context) error {
	if err := r.db.Master.PingContext(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *ReservationRepository) scanOne(row scanner) (*domain.Reservation, error) {
	var (
		res   domain.Reservation
		email sql.NullString
	)
	err := row.Scan(
		&res.ID, &res.Title, &res.OrganizerName, &email,
		&res.StartAt, &res.EndAt, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}

	res.OrganizerEmail = email.String
	res.StartAt = res.StartAt.In(r.loc)
	res.EndAt = res.EndAt.In(r.loc)
	res.CreatedAt = res.CreatedAt.In(r.loc)

	return &res, nil
}

func (r *ReservationRepository) scanAll(rows *sql.Rows) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for rows.Next() {
		res, err := r.scanOne(rows)
		if err != nil {
			return nil, unavailable("scan reservation", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate reservations", err)
	}
	return out, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrStoreUnavailable, err))
}
