package schedule

import (
	"sort"
	"time"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	"github.com/m04kA/ORS-RoomBookingService/pkg/types"
)

// TimePointStatus is the booking-eligibility status of a single timeline
// point. Derived, never persisted.
type TimePointStatus string

const (
	PointAvailable TimePointStatus = "available"
	PointBooked    TimePointStatus = "booked"
	PointPast      TimePointStatus = "past"
	PointClosed    TimePointStatus = "closed"
)

// DayPeriod groups timeline points for client rendering.
type DayPeriod string

const (
	PeriodMorning   DayPeriod = "morning"
	PeriodAfternoon DayPeriod = "afternoon"
)

// noonMinute splits the day into morning and afternoon halves.
const noonMinute = types.TimeOfDay(12 * 60)

// TimePoint is one annotated point of a room-day timeline, used to drive
// start/end pickers in the client.
type TimePoint struct {
	Time       types.TimeOfDay
	Status     TimePointStatus
	CanBeStart bool
	CanBeEnd   bool
	Period     DayPeriod
}

// GenerateTimePoints produces the annotated timeline for a single room-day:
// one point per grid step across office hours plus every booking end minute
// that falls off the grid, so back-to-back bookings stay selectable as new
// start times. Output is sorted and fully deterministic for a given input.
func (e *Engine) GenerateTimePoints(
	bookings []*domain.Booking,
	closures []*domain.Closure,
	date time.Time,
	now time.Time,
) []TimePoint {
	span := e.cfg.Hours.Span()
	step := types.TimeOfDay(e.cfg.TimeStepMinutes)

	booked := bookingIntervals(bookings)
	closed := e.closureIntervals(closures)

	// Граничные минуты: концы активных бронирований остаются доступными
	// как начало новой брони
	boundaries := make(map[types.TimeOfDay]bool, len(booked))
	for _, iv := range booked {
		boundaries[iv.End] = true
	}

	// Сетка с фиксированным шагом + граничные минуты вне сетки
	seen := make(map[types.TimeOfDay]bool)
	minutes := make([]types.TimeOfDay, 0, int(span.End-span.Start)/e.cfg.TimeStepMinutes+2)

	for m := span.Start; m <= span.End; m += step {
		seen[m] = true
		minutes = append(minutes, m)
	}
	if !seen[span.End] {
		seen[span.End] = true
		minutes = append(minutes, span.End)
	}
	for b := range boundaries {
		if b > span.Start && b < span.End && !seen[b] {
			seen[b] = true
			minutes = append(minutes, b)
		}
	}

	sort.Slice(minutes, func(i, j int) bool { return minutes[i] < minutes[j] })

	points := make([]TimePoint, 0, len(minutes))
	for _, m := range minutes {
		points = append(points, e.buildTimePoint(m, span, booked, closed, boundaries, date, now))
	}

	return points
}

func (e *Engine) buildTimePoint(
	m types.TimeOfDay,
	span Interval,
	booked, closed []Interval,
	boundaries map[types.TimeOfDay]bool,
	date time.Time,
	now time.Time,
) TimePoint {
	inBooked := containsMinute(booked, m)
	isBoundary := boundaries[m]
	isClosed := containsMinute(closed, m)
	isPast := types.IsPast(date, m, now, e.cfg.Location)

	// Приоритет статусов: closed > past > booked > available.
	// Граничная минута не считается занятой, иначе стыковка броней невозможна.
	status := PointAvailable
	switch {
	case isClosed:
		status = PointClosed
	case isPast:
		status = PointPast
	case inBooked && !isBoundary:
		status = PointBooked
	}

	canStart := false
	canEnd := false
	if status == PointAvailable {
		canStart = m != span.End && (!inBooked || isBoundary)
		canEnd = !insideBookingEnd(booked, m)
	}

	period := PeriodMorning
	if m >= noonMinute {
		period = PeriodAfternoon
	}

	return TimePoint{
		Time:       m,
		Status:     status,
		CanBeStart: canStart,
		CanBeEnd:   canEnd,
		Period:     period,
	}
}

func containsMinute(intervals []Interval, m types.TimeOfDay) bool {
	for _, iv := range intervals {
		if iv.Contains(m) {
			return true
		}
	}
	return false
}

// insideBookingEnd reports whether some booking has start < m <= end, which
// makes m unusable as a new booking's end minute.
func insideBookingEnd(booked []Interval, m types.TimeOfDay) bool {
	for _, iv := range booked {
		if iv.Start < m && m <= iv.End {
			return true
		}
	}
	return false
}
