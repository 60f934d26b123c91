// Package schedule implements the availability and conflict-resolution
// engine: interval policy checks, conflict detection, timeline generation,
// free-run computation and day classification.
//
// The engine is pure and stateless. Every entry point takes its full input
// (existing bookings, closures, query date and "now") as explicit arguments
// and returns a value; there is no I/O, no ambient clock read and no shared
// mutable state, so an Engine is safe to share across goroutines.
//
// The engine's conflict check is a pre-flight UX layer. The final race-safety
// guarantee against two near-simultaneous bookings for the same slot is the
// uniqueness constraint on the bookings table.
package schedule

import (
	"time"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
)

// Config is the immutable schedule configuration an Engine is built from.
// Multiple engines with different configurations can coexist in one process.
type Config struct {
	Hours OfficeHours

	MinBookingMinutes   int
	MaxBookingMinutes   int
	AdvanceBookingDays  int
	CancelNoticeMinutes int
	TimeStepMinutes     int

	// Location is the single civil timezone the whole system operates in.
	Location *time.Location
}

// Engine evaluates booking requests and produces availability views over
// materialized booking and closure records supplied by the caller.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine, filling unset limits with the domain defaults.
func NewEngine(cfg Config) *Engine {
	if cfg.MinBookingMinutes == 0 {
		cfg.MinBookingMinutes = domain.DefaultMinBookingMinutes
	}
	if cfg.MaxBookingMinutes == 0 {
		cfg.MaxBookingMinutes = domain.DefaultMaxBookingMinutes
	}
	if cfg.TimeStepMinutes == 0 {
		cfg.TimeStepMinutes = domain.DefaultTimeStepMinutes
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Engine{cfg: cfg}
}

// Hours returns the configured office hours.
func (e *Engine) Hours() OfficeHours {
	return e.cfg.Hours
}

// Location returns the configured civil timezone.
func (e *Engine) Location() *time.Location {
	return e.cfg.Location
}

// bookingIntervals materializes active bookings into occupied intervals.
func bookingIntervals(bookings []*domain.Booking) []Interval {
	occupied := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		occupied = append(occupied, Interval{Start: b.StartTime, End: b.EndTime})
	}
	return occupied
}

// closureIntervals materializes closures into occupied intervals. An all-day
// closure occupies the full office-hours span.
func (e *Engine) closureIntervals(closures []*domain.Closure) []Interval {
	occupied := make([]Interval, 0, len(closures))
	for _, c := range closures {
		if c.IsAllDay {
			occupied = append(occupied, e.cfg.Hours.Span())
			continue
		}
		if c.HasInterval() {
			occupied = append(occupied, Interval{Start: *c.StartTime, End: *c.EndTime})
		}
	}
	return occupied
}
