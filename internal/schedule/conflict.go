package schedule

import (
	"time"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
)

// FindConflicts returns every occupied interval the candidate overlaps,
// in input order. Back-to-back intervals (candidate start equals an occupied
// end, or the reverse) never conflict.
func FindConflicts(candidate Interval, occupied []Interval) []Interval {
	var conflicts []Interval
	for _, iv := range occupied {
		if Overlaps(candidate, iv) {
			conflicts = append(conflicts, iv)
		}
	}
	return conflicts
}

// ValidateBooking runs the full validation pipeline for a booking request:
// policy checks first, then conflict detection against the day's materialized
// bookings and closures. Returns nil when the request may proceed to insert,
// a *PolicyError or *ConflictError otherwise.
//
// The persistence-layer uniqueness constraint remains the authoritative
// conflict decision; callers must treat a unique violation on insert as a
// user-visible rejection, never as a retryable error.
func (e *Engine) ValidateBooking(
	candidate Interval,
	date time.Time,
	now time.Time,
	bookings []*domain.Booking,
	closures []*domain.Closure,
) error {
	if err := e.ValidateInterval(candidate, date, now); err != nil {
		return err
	}

	occupied := append(bookingIntervals(bookings), e.closureIntervals(closures)...)
	if conflicts := FindConflicts(candidate, occupied); len(conflicts) > 0 {
		return &ConflictError{Conflicts: conflicts}
	}

	return nil
}
