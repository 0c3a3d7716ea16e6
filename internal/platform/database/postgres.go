package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// NewPostgresDB opens a connection pool, retrying while the database comes
// up. Useful when the service starts alongside its database in a compose
// stack.
func NewPostgresDB(cfg Config, logger zerolog.Logger) (*sql.DB, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)

	var db *sql.DB
	var err error
	maxRetries := 10

	for i := 1; i <= maxRetries; i++ {
		logger.Info().Int("attempt", i).Int("max", maxRetries).Msg("connecting to database")

		db, err = sql.Open("postgres", connStr)
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			logger.Info().Msg("database connected")
			return db, nil
		}

		logger.Warn().Err(err).Msg("database not ready yet, waiting 2 seconds")
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect to database: %w", err)
}
