package services_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"seatbooking/internal/core/domain"
)

// fakeClock lets tests move time forward past lock TTLs.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Now()}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type memLockEntry struct {
	token     string
	expiresAt time.Time
}

// memLockStore is an in-memory lock store with the same semantics the
// Redis adapter provides: per-key atomic set-if-absent, compare-and-delete
// and passive TTL expiry. One mutex per store makes every operation atomic
// with respect to concurrent callers.
type memLockStore struct {
	mu    sync.Mutex
	now   func() time.Time
	locks map[string]memLockEntry
}

func newMemLockStore(now func() time.Time) *memLockStore {
	if now == nil {
		now = time.Now
	}

	return &memLockStore{now: now, locks: make(map[string]memLockEntry)}
}

func (s *memLockStore) live(key string) (memLockEntry, bool) {
	e, ok := s.locks[key]
	if !ok {
		return memLockEntry{}, false
	}

	if !e.expiresAt.After(s.now()) {
		delete(s.locks, key)
		return memLockEntry{}, false
	}

	return e, true
}

func (s *memLockStore) TryAcquire(_ context.Context, key, token string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, held := s.live(key); held {
		return false, nil
	}

	s.locks[key] = memLockEntry{token: token, expiresAt: s.now().Add(ttl)}
	return true, nil
}

func (s *memLockStore) Read(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, held := s.live(key)
	if !held {
		return "", false, nil
	}

	return e.token, true, nil
}

func (s *memLockStore) CompareAndDelete(_ context.Context, key, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, held := s.live(key)
	if !held || e.token != token {
		return false, nil
	}

	delete(s.locks, key)
	return true, nil
}

func (s *memLockStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, held := s.live(key)
	return held, nil
}

// memBookingRepo mimics the Postgres repository: group inserts are
// all-or-nothing and a second BOOKED row for a (show, seat) pair is
// rejected with a conflict, like the partial unique index would.
type memBookingRepo struct {
	mu     sync.Mutex
	booked map[string]domain.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{booked: make(map[string]domain.Booking)}
}

func bookedKey(showID, seatID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", showID, seatID)
}

func (r *memBookingRepo) BookedSeatIDs(_ context.Context, showID uuid.UUID) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []uuid.UUID
	for _, b := range r.booked {
		if b.ShowID == showID {
			ids = append(ids, b.SeatID)
		}
	}

	return ids, nil
}

func (r *memBookingRepo) HasBookedSeat(_ context.Context, showID, seatID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.booked[bookedKey(showID, seatID)]
	return ok, nil
}

func (r *memBookingRepo) CreateBookings(_ context.Context, bookings []domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range bookings {
		if _, exists := r.booked[bookedKey(b.ShowID, b.SeatID)]; exists {
			return &domain.SeatConflictError{SeatID: b.SeatID, Reason: domain.SeatAlreadyBooked}
		}
	}

	for _, b := range bookings {
		r.booked[bookedKey(b.ShowID, b.SeatID)] = b
	}

	return nil
}

func (r *memBookingRepo) CountBooked(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.booked)), nil
}

type memShowRepo struct {
	shows map[uuid.UUID]domain.Show
}

func newMemShowRepo(shows ...domain.Show) *memShowRepo {
	m := make(map[uuid.UUID]domain.Show, len(shows))
	for _, s := range shows {
		m[s.ID] = s
	}

	return &memShowRepo{shows: m}
}

func (r *memShowRepo) GetByID(_ context.Context, showID uuid.UUID) (*domain.Show, error) {
	s, ok := r.shows[showID]
	if !ok {
		return nil, domain.ErrShowNotFound
	}

	return &s, nil
}

type memSeatRepo struct {
	seats []domain.Seat
}

func (r *memSeatRepo) GetByScreen(_ context.Context, screenID uuid.UUID) ([]domain.Seat, error) {
	var seats []domain.Seat
	for _, s := range r.seats {
		if s.ScreenID == screenID {
			seats = append(seats, s)
		}
	}

	return seats, nil
}
