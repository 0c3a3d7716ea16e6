package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"seatbooking/internal/core/domain"
	"seatbooking/internal/core/ports"
)

// AvailabilityService computes which seats of a show can currently be
// attempted. The result is a point-in-time snapshot: it holds no claim on
// any seat, so a seat reported available can be gone by the time the
// caller tries to lock it.
type AvailabilityService struct {
	showRepo    ports.ShowRepository
	seatRepo    ports.SeatRepository
	bookingRepo ports.BookingRepository
	locks       ports.LockStore
}

func NewAvailabilityService(
	showRepo ports.ShowRepository,
	seatRepo ports.SeatRepository,
	bookingRepo ports.BookingRepository,
	locks ports.LockStore,
) *AvailabilityService {
	return &AvailabilityService{
		showRepo:    showRepo,
		seatRepo:    seatRepo,
		bookingRepo: bookingRepo,
		locks:       locks,
	}
}

// AvailableSeats returns the seats of the show's screen that have neither
// a committed booking nor a live lock.
func (s *AvailabilityService) AvailableSeats(ctx context.Context, showID uuid.UUID) ([]domain.Seat, error) {
	show, err := s.showRepo.GetByID(ctx, showID)
	if err != nil {
		return nil, err
	}

	seats, err := s.seatRepo.GetByScreen(ctx, show.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("fetch seats for screen %s: %w", show.ScreenID, err)
	}

	bookedIDs, err := s.bookingRepo.BookedSeatIDs(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("fetch booked seats for show %s: %w", showID, err)
	}

	booked := make(map[uuid.UUID]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	available := make([]domain.Seat, 0, len(seats))
	for _, seat := range seats {
		if _, taken := booked[seat.ID]; taken {
			continue
		}

		// Probed per seat; EXISTS can take multiple keys but batching
		// only changes latency, never the result.
		held, err := s.locks.Exists(ctx, domain.LockKey(showID, seat.ID))
		if err != nil {
			return nil, fmt.Errorf("probe lock for seat %s: %w", seat.ID, err)
		}

		if held {
			continue
		}

		available = append(available, seat)
	}

	return available, nil
}
