package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	availabilityChecks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "availability_checks_total",
			Help: "Total availability snapshots served",
		},
	)

	seatLocksGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seat_locks_granted_total",
			Help: "Total seats locked across all granted lock groups",
		},
	)

	seatLockConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seat_lock_conflicts_total",
			Help: "Lock group attempts rejected, by conflict reason",
		},
		[]string{"reason"},
	)

	bookingsCommitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_committed_total",
			Help: "Total booking rows committed",
		},
	)

	bookingConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_conflicts_total",
			Help: "Booking commit attempts rejected, by conflict reason",
		},
		[]string{"reason"},
	)

	bookedSeats = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "booked_seats_total",
			Help: "Current number of BOOKED rows, sampled periodically",
		},
	)
)

func AvailabilityChecked() {
	availabilityChecks.Inc()
}

func LocksGranted(seats int) {
	seatLocksGranted.Add(float64(seats))
}

func LockConflict(reason string) {
	seatLockConflicts.WithLabelValues(reason).Inc()
}

func BookingsCommitted(seats int) {
	bookingsCommitted.Add(float64(seats))
}

func BookingConflict(reason string) {
	bookingConflicts.WithLabelValues(reason).Inc()
}

func SetBookedSeats(n int64) {
	bookedSeats.Set(float64(n))
}
