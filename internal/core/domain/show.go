package domain

import (
	"time"

	"github.com/google/uuid"
)

// Show is a scheduled screening on a screen. Shows are created by the
// scheduling subsystem and never mutated here.
type Show struct {
	ID       uuid.UUID
	ScreenID uuid.UUID
	StartsAt time.Time
	EndsAt   time.Time
}
