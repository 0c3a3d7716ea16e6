package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"seatbooking/internal/core/domain"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) BookedSeatIDs(ctx context.Context, showID uuid.UUID) ([]uuid.UUID, error) {
	query := `
	SELECT seat_id FROM bookings
	WHERE show_id = $1 AND status = 'BOOKED'
	`

	rows, err := r.db.QueryContext(ctx, query, showID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *BookingRepository) HasBookedSeat(ctx context.Context, showID, seatID uuid.UUID) (bool, error) {
	query := `
	SELECT EXISTS (
		SELECT 1 FROM bookings
		WHERE show_id = $1 AND seat_id = $2 AND status = 'BOOKED'
	)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, showID, seatID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// CreateBookings inserts the whole group in one transaction. The partial
// unique index bookings_one_booked_per_seat rejects a second BOOKED row
// for any (show, seat) pair; that violation surfaces as a
// SeatConflictError naming the seat, and the transaction rolls back so
// none of the group's rows survive.
func (r *BookingRepository) CreateBookings(ctx context.Context, bookings []domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	query := `
	INSERT INTO bookings (id, user_id, show_id, seat_id, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare booking statement: %w", err)
	}

	defer stmt.Close()

	for _, b := range bookings {
		_, err := stmt.ExecContext(ctx, b.ID, b.UserID, b.ShowID, b.SeatID, b.Status, b.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return &domain.SeatConflictError{SeatID: b.SeatID, Reason: domain.SeatAlreadyBooked}
			}

			return fmt.Errorf("failed to insert booking for seat %s: %w", b.SeatID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bookings: %w", err)
	}

	return nil
}

func (r *BookingRepository) CountBooked(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE status = 'BOOKED'`).Scan(&n)
	if err != nil {
		return 0, err
	}

	return n, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
