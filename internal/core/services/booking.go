package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"seatbooking/internal/core/domain"
	"seatbooking/internal/core/ports"
)

// BookingService converts a live lock group into durable bookings.
//
// The lock store and the database are independent systems, so a lock can
// still expire between the token checks and the transaction commit. That
// window is accepted: the TTL is far larger than commit latency, and the
// unique index on booked (show, seat) pairs enforces the invariant
// regardless of what the lock store says. The lock is admission control,
// the database is the authority.
type BookingService struct {
	bookingRepo ports.BookingRepository
	locks       ports.LockStore
	logger      zerolog.Logger
}

func NewBookingService(bookingRepo ports.BookingRepository, locks ports.LockStore, logger zerolog.Logger) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		locks:       locks,
		logger:      logger,
	}
}

// Commit verifies that every seat's lock still belongs to token, then
// inserts one BOOKED row per seat inside a single transaction. The first
// seat with a missing or foreign lock aborts the whole group before
// anything is written. Returns the new booking IDs in seat order.
func (s *BookingService) Commit(ctx context.Context, token string, showID uuid.UUID, seatIDs []uuid.UUID, userID uuid.UUID) ([]uuid.UUID, error) {
	for _, seatID := range seatIDs {
		held, ok, err := s.locks.Read(ctx, domain.LockKey(showID, seatID))
		if err != nil {
			return nil, fmt.Errorf("read lock for seat %s: %w", seatID, err)
		}

		if !ok || held != token {
			return nil, &domain.SeatConflictError{SeatID: seatID, Reason: domain.LockInvalidOrExpired}
		}
	}

	now := time.Now()
	bookings := make([]domain.Booking, 0, len(seatIDs))
	for _, seatID := range seatIDs {
		bookings = append(bookings, domain.Booking{
			ID:        uuid.New(),
			UserID:    userID,
			ShowID:    showID,
			SeatID:    seatID,
			Status:    domain.BookingBooked,
			CreatedAt: now,
		})
	}

	if err := s.bookingRepo.CreateBookings(ctx, bookings); err != nil {
		return nil, err
	}

	// Cleanup is best effort. The bookings above stand either way; a key
	// that could not be deleted simply expires on its own.
	for _, seatID := range seatIDs {
		key := domain.LockKey(showID, seatID)

		if _, err := s.locks.CompareAndDelete(ctx, key, token); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to release lock after commit")
		}
	}

	ids := make([]uuid.UUID, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
	}

	return ids, nil
}
