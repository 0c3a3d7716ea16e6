package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"seatbooking/internal/core/ports"
	"seatbooking/internal/platform/metrics"
)

// Reporter periodically samples the booked-seat total for logs and the
// booked_seats_total gauge. Lock expiry needs no sweeper here: the lock
// store's TTL frees abandoned keys on its own.
type Reporter struct {
	bookingRepo ports.BookingRepository
	interval    time.Duration
	logger      zerolog.Logger
}

func NewReporter(bookingRepo ports.BookingRepository, interval time.Duration, logger zerolog.Logger) *Reporter {
	if interval <= 0 {
		interval = time.Minute
	}

	return &Reporter{
		bookingRepo: bookingRepo,
		interval:    interval,
		logger:      logger,
	}
}

// Run blocks until ctx is cancelled.
func (r *Reporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info().Dur("interval", r.interval).Msg("booking reporter started")

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("booking reporter stopped")
			return
		case <-ticker.C:
			r.sample(ctx)
		}
	}
}

func (r *Reporter) sample(ctx context.Context) {
	n, err := r.bookingRepo.CountBooked(ctx)
	if err != nil {
		r.logger.Warn().Err(err).Msg("failed to count booked seats")
		return
	}

	metrics.SetBookedSeats(n)
	r.logger.Debug().Int64("booked_seats", n).Msg("sampled booking totals")
}
