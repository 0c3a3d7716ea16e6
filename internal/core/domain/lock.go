package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultLockTTL bounds how long an unconverted seat lock survives in the
// lock store before the key frees itself.
const DefaultLockTTL = 600 * time.Second

// LockHandle proves ownership of a group of seat locks taken in a single
// attempt. Every key in the group stores the same token, so one handle
// covers the whole group.
type LockHandle struct {
	Token string
	TTL   time.Duration
}

// LockKey addresses the transient lock for one seat of one show in the
// lock store.
func LockKey(showID, seatID uuid.UUID) string {
	return fmt.Sprintf("seatlock:%s:%s", showID, seatID)
}
