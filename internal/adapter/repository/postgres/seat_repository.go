package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"seatbooking/internal/core/domain"
)

type SeatRepository struct {
	db *sql.DB
}

func NewSeatRepository(db *sql.DB) *SeatRepository {
	return &SeatRepository{db: db}
}

func (r *SeatRepository) GetByScreen(ctx context.Context, screenID uuid.UUID) ([]domain.Seat, error) {
	query := `
	SELECT id, screen_id, label, class
	FROM seats
	WHERE screen_id = $1
	ORDER BY label
	`

	rows, err := r.db.QueryContext(ctx, query, screenID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var seats []domain.Seat
	for rows.Next() {
		var seat domain.Seat
		if err := rows.Scan(
			&seat.ID,
			&seat.ScreenID,
			&seat.Label,
			&seat.Class,
		); err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	return seats, rows.Err()
}
