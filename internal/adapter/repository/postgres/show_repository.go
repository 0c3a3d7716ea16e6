package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"seatbooking/internal/core/domain"
)

type ShowRepository struct {
	db *sql.DB
}

func NewShowRepository(db *sql.DB) *ShowRepository {
	return &ShowRepository{db: db}
}

func (r *ShowRepository) GetByID(ctx context.Context, showID uuid.UUID) (*domain.Show, error) {
	query := `
	SELECT id, screen_id, starts_at, ends_at
	FROM shows
	WHERE id = $1
	`

	var show domain.Show

	err := r.db.QueryRowContext(ctx, query, showID).Scan(
		&show.ID,
		&show.ScreenID,
		&show.StartsAt,
		&show.EndsAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrShowNotFound
		}

		return nil, err
	}

	return &show, nil
}
