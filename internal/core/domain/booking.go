package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingBooked    BookingStatus = "BOOKED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking is the durable record of one seat sold for one show. For any
// (show, seat) pair at most one row with status BOOKED may exist; a
// partial unique index enforces that independently of any lock checks.
type Booking struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ShowID    uuid.UUID
	SeatID    uuid.UUID
	Status    BookingStatus
	CreatedAt time.Time
}
