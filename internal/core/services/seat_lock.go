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

// SeatLockService takes time-boxed locks on groups of seats. The lock
// store only guarantees atomicity per key, so group semantics come from
// the protocol: acquire seat by seat in the caller's order, and on the
// first failure release everything taken during the same attempt before
// reporting the failing seat.
type SeatLockService struct {
	bookingRepo ports.BookingRepository
	locks       ports.LockStore
	ttl         time.Duration
	logger      zerolog.Logger
}

func NewSeatLockService(
	bookingRepo ports.BookingRepository,
	locks ports.LockStore,
	ttl time.Duration,
	logger zerolog.Logger,
) *SeatLockService {
	if ttl <= 0 {
		ttl = domain.DefaultLockTTL
	}

	return &SeatLockService{
		bookingRepo: bookingRepo,
		locks:       locks,
		ttl:         ttl,
		logger:      logger,
	}
}

// TTL returns the lock window applied to new lock groups.
func (s *SeatLockService) TTL() time.Duration {
	return s.ttl
}

// Lock claims every seat in seatIDs for the show under one fresh token.
// A seat with a committed booking fails the attempt with SeatAlreadyBooked;
// a seat whose key is held by another token fails it with
// SeatAlreadyLocked. Either way every key acquired earlier in this attempt
// is released first, so a failed group never leaves partial locks behind.
func (s *SeatLockService) Lock(ctx context.Context, showID uuid.UUID, seatIDs []uuid.UUID) (*domain.LockHandle, error) {
	token := uuid.NewString()

	var acquired []string

	for _, seatID := range seatIDs {
		booked, err := s.bookingRepo.HasBookedSeat(ctx, showID, seatID)
		if err != nil {
			s.rollback(ctx, acquired, token)
			return nil, fmt.Errorf("check booking for seat %s: %w", seatID, err)
		}

		if booked {
			s.rollback(ctx, acquired, token)
			return nil, &domain.SeatConflictError{SeatID: seatID, Reason: domain.SeatAlreadyBooked}
		}

		key := domain.LockKey(showID, seatID)

		ok, err := s.locks.TryAcquire(ctx, key, token, s.ttl)
		if err != nil {
			s.rollback(ctx, acquired, token)
			return nil, fmt.Errorf("acquire lock for seat %s: %w", seatID, err)
		}

		if !ok {
			s.rollback(ctx, acquired, token)
			return nil, &domain.SeatConflictError{SeatID: seatID, Reason: domain.SeatAlreadyLocked}
		}

		acquired = append(acquired, key)
	}

	return &domain.LockHandle{Token: token, TTL: s.ttl}, nil
}

// Release drops the token's claim on the given seats ahead of expiry.
// Keys already expired or owned by a different token are left alone.
func (s *SeatLockService) Release(ctx context.Context, token string, showID uuid.UUID, seatIDs []uuid.UUID) error {
	for _, seatID := range seatIDs {
		key := domain.LockKey(showID, seatID)

		if _, err := s.locks.CompareAndDelete(ctx, key, token); err != nil {
			return fmt.Errorf("release lock for seat %s: %w", seatID, err)
		}
	}

	return nil
}

// rollback compensates a failed group attempt. Compare-and-delete keeps a
// concurrent owner safe: if one of our keys already expired and was taken
// by someone else, their lock survives.
func (s *SeatLockService) rollback(ctx context.Context, keys []string, token string) {
	for _, key := range keys {
		if _, err := s.locks.CompareAndDelete(ctx, key, token); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to roll back seat lock")
		}
	}
}
