package domain

import (
	"github.com/google/uuid"
)

type SeatClass string

const (
	SeatStandard SeatClass = "STANDARD"
	SeatPremium  SeatClass = "PREMIUM"
	SeatRecliner SeatClass = "RECLINER"
)

// Seat is immutable reference data describing one physical seat of a
// screen. Whether a seat is takeable for a given show is never stored on
// the seat itself; it is derived from bookings and live locks.
type Seat struct {
	ID       uuid.UUID
	ScreenID uuid.UUID
	Label    string
	Class    SeatClass
}
