package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates the tables and the booked-seat unique index if they
// do not exist yet. The partial unique index is the hard guarantee that a
// (show, seat) pair is sold at most once, independent of any lock checks.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS shows (
			id UUID PRIMARY KEY,
			screen_id UUID NOT NULL,
			starts_at TIMESTAMP WITH TIME ZONE NOT NULL,
			ends_at TIMESTAMP WITH TIME ZONE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS seats (
			id UUID PRIMARY KEY,
			screen_id UUID NOT NULL,
			label VARCHAR(16) NOT NULL,
			class VARCHAR(16) NOT NULL,
			UNIQUE (screen_id, label)
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			show_id UUID NOT NULL,
			seat_id UUID NOT NULL,
			status VARCHAR(16) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS bookings_one_booked_per_seat
			ON bookings (show_id, seat_id)
			WHERE status = 'BOOKED'`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	return nil
}
