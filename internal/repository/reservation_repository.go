package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vlkr/booking_api/internal/model"
)

// ReservationRepository is the reservation ledger. The partial unique index
// on (service_id, day, start_at) for confirmed rows is the authoritative
// double-booking guard; Create surfaces its violation unchanged so the
// service layer can translate it.
type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

// Create inserts a confirmed reservation.
func (r *ReservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	query := `
		INSERT INTO reservations (user_id, service_id, service_name, day, start_at, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		reservation.UserID,
		reservation.ServiceID,
		reservation.ServiceName,
		reservation.Day,
		reservation.StartAt,
		reservation.Status,
	).Scan(&reservation.ID, &reservation.CreatedAt, &reservation.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}

	return nil
}

// GetByID returns a reservation by id, nil if absent.
func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*model.Reservation, error) {
	query := `
		SELECT id, user_id, service_id, service_name, day, start_at, status, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`

	var reservation model.Reservation
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.ServiceID,
		&reservation.ServiceName,
		&reservation.Day,
		&reservation.StartAt,
		&reservation.Status,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation by id: %w", err)
	}

	return &reservation, nil
}

// ConfirmedStarts returns the start times with a confirmed reservation for
// (service, day).
func (r *ReservationRepository) ConfirmedStarts(ctx context.Context, serviceID int64, day string) (map[string]struct{}, error) {
	query := `
		SELECT start_at
		FROM reservations
		WHERE service_id = $1 AND day = $2 AND status = 'confirmed'
	`

	rows, err := r.pool.Query(ctx, query, serviceID, day)
	if err != nil {
		return nil, fmt.Errorf("get confirmed starts: %w", err)
	}
	defer rows.Close()

	starts := make(map[string]struct{})
	for rows.Next() {
		var startAt string
		if err := rows.Scan(&startAt); err != nil {
			return nil, fmt.Errorf("scan confirmed start: %w", err)
		}
		starts[startAt] = struct{}{}
	}

	return starts, nil
}

// HasConfirmed reports whether a confirmed reservation occupies
// (service, day, start time). Fast-path check only, the unique index decides.
func (r *ReservationRepository) HasConfirmed(ctx context.Context, serviceID int64, day, startAt string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM reservations
			WHERE service_id = $1 AND day = $2 AND start_at = $3 AND status = 'confirmed'
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, serviceID, day, startAt).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check confirmed reservation: %w", err)
	}

	return exists, nil
}

// Cancel flips a confirmed reservation to cancelled and reports whether a
// row changed. A second cancel affects nothing and returns false.
func (r *ReservationRepository) Cancel(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE reservations
		SET status = 'cancelled', updated_at = now()
		WHERE id = $1 AND status = 'confirmed'
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("cancel reservation: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ListByUser returns all reservations of a user, newest day and time first.
func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64) ([]*model.Reservation, error) {
	query := `
		SELECT id, user_id, service_id, service_name, day, start_at, status, created_at, updated_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY day DESC, start_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by user: %w", err)
	}
	defer rows.Close()

	var reservations []*model.Reservation
	for rows.Next() {
		var reservation model.Reservation
		err := rows.Scan(
			&reservation.ID,
			&reservation.UserID,
			&reservation.ServiceID,
			&reservation.ServiceName,
			&reservation.Day,
			&reservation.StartAt,
			&reservation.Status,
			&reservation.CreatedAt,
			&reservation.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		reservations = append(reservations, &reservation)
	}

	return reservations, nil
}
