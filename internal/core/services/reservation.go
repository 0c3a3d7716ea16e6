package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"seatbooking/internal/core/domain"
	"seatbooking/internal/core/ports"
	"seatbooking/internal/platform/metrics"
)

type LockSeatsRequest struct {
	ShowID  string   `json:"show_id"`
	SeatIDs []string `json:"seat_ids"`
}

type LockSeatsResponse struct {
	LockToken  string `json:"lock_token"`
	TTLSeconds int    `json:"ttl_seconds"`
}

type BookSeatsRequest struct {
	LockToken string   `json:"lock_token"`
	ShowID    string   `json:"show_id"`
	SeatIDs   []string `json:"seat_ids"`
	UserID    string   `json:"user_id"`
}

type BookSeatsResponse struct {
	BookingIDs []string `json:"booking_ids"`
}

type ReleaseSeatsRequest struct {
	LockToken string   `json:"lock_token"`
	ShowID    string   `json:"show_id"`
	SeatIDs   []string `json:"seat_ids"`
}

type SeatView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Class string `json:"class"`
}

type AvailabilityResponse struct {
	ShowID string     `json:"show_id"`
	Seats  []SeatView `json:"seats"`
}

// ReservationService is the façade callers go through. It validates input,
// confirms the show exists, delegates to the availability, lock and
// booking services, and feeds the operation counters.
type ReservationService struct {
	showRepo     ports.ShowRepository
	seatRepo     ports.SeatRepository
	availability *AvailabilityService
	locker       *SeatLockService
	committer    *BookingService
	logger       zerolog.Logger
}

func NewReservationService(
	showRepo ports.ShowRepository,
	seatRepo ports.SeatRepository,
	availability *AvailabilityService,
	locker *SeatLockService,
	committer *BookingService,
	logger zerolog.Logger,
) *ReservationService {
	return &ReservationService{
		showRepo:     showRepo,
		seatRepo:     seatRepo,
		availability: availability,
		locker:       locker,
		committer:    committer,
		logger:       logger,
	}
}

// CheckAvailability returns the currently bookable seats of a show.
func (s *ReservationService) CheckAvailability(ctx context.Context, showID string) (*AvailabilityResponse, error) {
	id, err := uuid.Parse(showID)
	if err != nil {
		return nil, domain.NewValidationError("malformed show id %q", showID)
	}

	seats, err := s.availability.AvailableSeats(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.AvailabilityChecked()

	views := make([]SeatView, 0, len(seats))
	for _, seat := range seats {
		views = append(views, SeatView{
			ID:    seat.ID.String(),
			Label: seat.Label,
			Class: string(seat.Class),
		})
	}

	return &AvailabilityResponse{ShowID: showID, Seats: views}, nil
}

// LockSeats takes a group lock over the requested seats.
func (s *ReservationService) LockSeats(ctx context.Context, req LockSeatsRequest) (*LockSeatsResponse, error) {
	showID, seatIDs, err := s.parseShowAndSeats(ctx, req.ShowID, req.SeatIDs)
	if err != nil {
		return nil, err
	}

	handle, err := s.locker.Lock(ctx, showID, seatIDs)
	if err != nil {
		if conflict := domain.AsSeatConflict(err); conflict != nil {
			metrics.LockConflict(string(conflict.Reason))
			s.logger.Info().
				Str("show_id", req.ShowID).
				Str("seat_id", conflict.SeatID.String()).
				Str("reason", string(conflict.Reason)).
				Msg("seat lock rejected")
		}

		return nil, err
	}

	metrics.LocksGranted(len(seatIDs))

	return &LockSeatsResponse{
		LockToken:  handle.Token,
		TTLSeconds: int(handle.TTL.Seconds()),
	}, nil
}

// BookSeats commits a previously locked group into bookings.
func (s *ReservationService) BookSeats(ctx context.Context, req BookSeatsRequest) (*BookSeatsResponse, error) {
	if req.LockToken == "" {
		return nil, domain.NewValidationError("lock token is required")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, domain.NewValidationError("malformed user id %q", req.UserID)
	}

	showID, seatIDs, err := s.parseShowAndSeats(ctx, req.ShowID, req.SeatIDs)
	if err != nil {
		return nil, err
	}

	bookingIDs, err := s.committer.Commit(ctx, req.LockToken, showID, seatIDs, userID)
	if err != nil {
		if conflict := domain.AsSeatConflict(err); conflict != nil {
			metrics.BookingConflict(string(conflict.Reason))
			s.logger.Info().
				Str("show_id", req.ShowID).
				Str("seat_id", conflict.SeatID.String()).
				Str("reason", string(conflict.Reason)).
				Msg("booking rejected")
		}

		return nil, err
	}

	metrics.BookingsCommitted(len(bookingIDs))
	s.logger.Info().
		Str("show_id", req.ShowID).
		Int("seats", len(bookingIDs)).
		Msg("booking committed")

	ids := make([]string, len(bookingIDs))
	for i, id := range bookingIDs {
		ids[i] = id.String()
	}

	return &BookSeatsResponse{BookingIDs: ids}, nil
}

// ReleaseSeats drops a lock group before its TTL runs out.
func (s *ReservationService) ReleaseSeats(ctx context.Context, req ReleaseSeatsRequest) error {
	if req.LockToken == "" {
		return domain.NewValidationError("lock token is required")
	}

	showID, seatIDs, err := s.parseShowAndSeats(ctx, req.ShowID, req.SeatIDs)
	if err != nil {
		return err
	}

	return s.locker.Release(ctx, req.LockToken, showID, seatIDs)
}

// parseShowAndSeats validates the common (show, seats) portion of a
// request: well-formed IDs, a non-empty duplicate-free seat list, a show
// that actually exists, and seats that belong to the show's screen.
func (s *ReservationService) parseShowAndSeats(ctx context.Context, rawShowID string, rawSeatIDs []string) (uuid.UUID, []uuid.UUID, error) {
	showID, err := uuid.Parse(rawShowID)
	if err != nil {
		return uuid.Nil, nil, domain.NewValidationError("malformed show id %q", rawShowID)
	}

	if len(rawSeatIDs) == 0 {
		return uuid.Nil, nil, domain.NewValidationError("no seats selected")
	}

	seen := make(map[uuid.UUID]struct{}, len(rawSeatIDs))
	seatIDs := make([]uuid.UUID, 0, len(rawSeatIDs))
	for _, raw := range rawSeatIDs {
		seatID, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, nil, domain.NewValidationError("malformed seat id %q", raw)
		}

		if _, dup := seen[seatID]; dup {
			return uuid.Nil, nil, domain.NewValidationError("duplicate seat id %q", raw)
		}

		seen[seatID] = struct{}{}
		seatIDs = append(seatIDs, seatID)
	}

	show, err := s.showRepo.GetByID(ctx, showID)
	if err != nil {
		return uuid.Nil, nil, err
	}

	screenSeats, err := s.seatRepo.GetByScreen(ctx, show.ScreenID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("fetch seats for screen %s: %w", show.ScreenID, err)
	}

	onScreen := make(map[uuid.UUID]struct{}, len(screenSeats))
	for _, seat := range screenSeats {
		onScreen[seat.ID] = struct{}{}
	}

	for _, seatID := range seatIDs {
		if _, ok := onScreen[seatID]; !ok {
			return uuid.Nil, nil, domain.NewValidationError("seat %s does not belong to this show", seatID)
		}
	}

	return showID, seatIDs, nil
}
