package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"seatbooking/internal/core/domain"
)

type ShowRepository interface {
	GetByID(ctx context.Context, showID uuid.UUID) (*domain.Show, error)
}

type SeatRepository interface {
	GetByScreen(ctx context.Context, screenID uuid.UUID) ([]domain.Seat, error)
}

type BookingRepository interface {
	// BookedSeatIDs returns the seats of a show that have a committed
	// booking with status BOOKED.
	BookedSeatIDs(ctx context.Context, showID uuid.UUID) ([]uuid.UUID, error)

	// HasBookedSeat reports whether a BOOKED booking exists for the
	// (show, seat) pair.
	HasBookedSeat(ctx context.Context, showID, seatID uuid.UUID) (bool, error)

	// CreateBookings inserts the whole group inside one transaction. If
	// any row violates the one-booked-booking-per-seat constraint, the
	// transaction rolls back and a SeatConflictError names the seat.
	CreateBookings(ctx context.Context, bookings []domain.Booking) error

	// CountBooked returns the total number of BOOKED rows.
	CountBooked(ctx context.Context) (int64, error)
}

// LockStore exposes the distributed store's atomic primitives and nothing
// else. Each call must be atomic on its own with respect to concurrent
// callers; implementations must never emulate one of these operations
// with a read followed by a write.
type LockStore interface {
	// TryAcquire creates key→token with the given TTL only if the key is
	// absent. Returns false without side effects when the key exists.
	TryAcquire(ctx context.Context, key, token string, ttl time.Duration) (bool, error)

	// Read returns the stored token, with ok=false when the key is absent.
	Read(ctx context.Context, key string) (token string, ok bool, err error)

	// CompareAndDelete removes the key only while its value still equals
	// token. Returns false when the key is absent or owned by another
	// token.
	CompareAndDelete(ctx context.Context, key, token string) (bool, error)

	// Exists reports whether a live lock occupies the key.
	Exists(ctx context.Context, key string) (bool, error)
}
