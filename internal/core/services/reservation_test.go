package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"seatbooking/internal/core/domain"
	"seatbooking/internal/core/ports/mocks"
	"seatbooking/internal/core/services"
)

func newReservationService(t *testing.T) (*services.ReservationService, *mocks.ShowRepository, *mocks.SeatRepository) {
	t.Helper()

	mockShowRepo := mocks.NewShowRepository(t)
	mockSeatRepo := mocks.NewSeatRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)
	mockLocks := mocks.NewLockStore(t)
	logger := zerolog.Nop()

	availability := services.NewAvailabilityService(mockShowRepo, mockSeatRepo, mockBookingRepo, mockLocks)
	locker := services.NewSeatLockService(mockBookingRepo, mockLocks, time.Minute, logger)
	committer := services.NewBookingService(mockBookingRepo, mockLocks, logger)

	svc := services.NewReservationService(mockShowRepo, mockSeatRepo, availability, locker, committer, logger)

	return svc, mockShowRepo, mockSeatRepo
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()

	var validation *domain.ValidationError
	assert.True(t, errors.As(err, &validation), "expected validation error, got %v", err)
}

func TestLockSeats_RejectsMalformedShowID(t *testing.T) {
	svc, _, _ := newReservationService(t)

	_, err := svc.LockSeats(context.Background(), services.LockSeatsRequest{
		ShowID:  "not-a-uuid",
		SeatIDs: []string{uuid.NewString()},
	})

	assertValidationError(t, err)
}

func TestLockSeats_RejectsEmptySeatList(t *testing.T) {
	svc, _, _ := newReservationService(t)

	_, err := svc.LockSeats(context.Background(), services.LockSeatsRequest{
		ShowID:  uuid.NewString(),
		SeatIDs: nil,
	})

	assertValidationError(t, err)
}

func TestLockSeats_RejectsDuplicateSeats(t *testing.T) {
	svc, _, _ := newReservationService(t)

	seatID := uuid.NewString()

	_, err := svc.LockSeats(context.Background(), services.LockSeatsRequest{
		ShowID:  uuid.NewString(),
		SeatIDs: []string{seatID, seatID},
	})

	assertValidationError(t, err)
}

func TestLockSeats_RejectsMalformedSeatID(t *testing.T) {
	svc, _, _ := newReservationService(t)

	_, err := svc.LockSeats(context.Background(), services.LockSeatsRequest{
		ShowID:  uuid.NewString(),
		SeatIDs: []string{"seat-101"},
	})

	assertValidationError(t, err)
}

func TestLockSeats_PropagatesShowNotFound(t *testing.T) {
	svc, mockShowRepo, _ := newReservationService(t)

	ctx := context.Background()
	showID := uuid.New()

	mockShowRepo.On("GetByID", ctx, showID).Return(nil, domain.ErrShowNotFound)

	_, err := svc.LockSeats(ctx, services.LockSeatsRequest{
		ShowID:  showID.String(),
		SeatIDs: []string{uuid.NewString()},
	})

	assert.True(t, errors.Is(err, domain.ErrShowNotFound))
}

func TestLockSeats_RejectsSeatOutsideShowScreen(t *testing.T) {
	svc, mockShowRepo, mockSeatRepo := newReservationService(t)

	ctx := context.Background()
	showID := uuid.New()
	screenID := uuid.New()
	screenSeat := domain.Seat{ID: uuid.New(), ScreenID: screenID, Label: "A1", Class: domain.SeatStandard}

	mockShowRepo.On("GetByID", ctx, showID).Return(&domain.Show{ID: showID, ScreenID: screenID}, nil)
	mockSeatRepo.On("GetByScreen", ctx, screenID).Return([]domain.Seat{screenSeat}, nil)

	_, err := svc.LockSeats(ctx, services.LockSeatsRequest{
		ShowID:  showID.String(),
		SeatIDs: []string{uuid.NewString()},
	})

	assertValidationError(t, err)
}

func TestBookSeats_RequiresLockToken(t *testing.T) {
	svc, _, _ := newReservationService(t)

	_, err := svc.BookSeats(context.Background(), services.BookSeatsRequest{
		ShowID:  uuid.NewString(),
		SeatIDs: []string{uuid.NewString()},
		UserID:  uuid.NewString(),
	})

	assertValidationError(t, err)
}

func TestBookSeats_RejectsMalformedUserID(t *testing.T) {
	svc, _, _ := newReservationService(t)

	_, err := svc.BookSeats(context.Background(), services.BookSeatsRequest{
		LockToken: uuid.NewString(),
		ShowID:    uuid.NewString(),
		SeatIDs:   []string{uuid.NewString()},
		UserID:    "user-42",
	})

	assertValidationError(t, err)
}

func TestCheckAvailability_RejectsMalformedShowID(t *testing.T) {
	svc, _, _ := newReservationService(t)

	_, err := svc.CheckAvailability(context.Background(), "show-1")

	assertValidationError(t, err)
}

func TestReleaseSeats_RequiresLockToken(t *testing.T) {
	svc, _, _ := newReservationService(t)

	err := svc.ReleaseSeats(context.Background(), services.ReleaseSeatsRequest{
		ShowID:  uuid.NewString(),
		SeatIDs: []string{uuid.NewString()},
	})

	assertValidationError(t, err)
}
