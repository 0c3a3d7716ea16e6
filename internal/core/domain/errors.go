package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrShowNotFound is returned when an operation references a show that
// does not exist.
var ErrShowNotFound = errors.New("show not found")

// ValidationError reports malformed input rejected before any store was
// touched.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Reason
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

type ConflictReason string

const (
	// SeatAlreadyBooked: a committed booking exists for the seat; the
	// seat can never be locked or booked again.
	SeatAlreadyBooked ConflictReason = "SEAT_ALREADY_BOOKED"
	// SeatAlreadyLocked: another lock group currently holds the seat's
	// key; the seat may free up when that lock expires or is released.
	SeatAlreadyLocked ConflictReason = "SEAT_ALREADY_LOCKED"
	// LockInvalidOrExpired: the caller's token does not match the seat's
	// stored lock, or no lock exists for the seat anymore.
	LockInvalidOrExpired ConflictReason = "LOCK_INVALID_OR_EXPIRED"
)

// SeatConflictError names the first seat that made a group operation
// impossible. The group is fully unwound before this is returned; a
// conflict never leaves partial locks or partial bookings behind.
type SeatConflictError struct {
	SeatID uuid.UUID
	Reason ConflictReason
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seat %s: %s", e.SeatID, e.Reason)
}

// AsSeatConflict unwraps err into a SeatConflictError, or nil.
func AsSeatConflict(err error) *SeatConflictError {
	var conflict *SeatConflictError
	if errors.As(err, &conflict) {
		return conflict
	}
	return nil
}
