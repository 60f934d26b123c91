package schedule

import (
	"time"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
)

// DayAvailability classifies a whole calendar day for the monthly view.
type DayAvailability string

const (
	DayAvailable DayAvailability = "available"
	DayPartial   DayAvailability = "partial"
	DayBooked    DayAvailability = "booked"
	DayClosed    DayAvailability = "closed"
)

// FreeIntervals merges the occupied intervals and returns the remaining gaps
// within office hours that are long enough for a minimum booking. The result
// is sorted, non-overlapping, and every entry is at least MinBookingMinutes
// long.
func (e *Engine) FreeIntervals(occupied []Interval) []Interval {
	span := e.cfg.Hours.Span()
	merged := MergeIntervals(clipToSpan(occupied, span))

	var free []Interval
	cursor := span.Start

	for _, run := range merged {
		if int(run.Start-cursor) >= e.cfg.MinBookingMinutes {
			free = append(free, Interval{Start: cursor, End: run.Start})
		}
		if run.End > cursor {
			cursor = run.End
		}
	}

	if int(span.End-cursor) >= e.cfg.MinBookingMinutes {
		free = append(free, Interval{Start: cursor, End: span.End})
	}

	return free
}

// clipToSpan trims occupied intervals to office hours and drops the ones
// entirely outside it.
func clipToSpan(occupied []Interval, span Interval) []Interval {
	clipped := make([]Interval, 0, len(occupied))
	for _, iv := range occupied {
		if iv.End <= span.Start || iv.Start >= span.End {
			continue
		}
		if iv.Start < span.Start {
			iv.Start = span.Start
		}
		if iv.End > span.End {
			iv.End = span.End
		}
		clipped = append(clipped, iv)
	}
	return clipped
}

// ClassifyDay buckets one room-day for the monthly view:
// closed when an all-day closure exists, available when nothing occupies the
// day, partial when at least one bookable gap remains, booked otherwise.
// A day whose unoccupied time is fragmented below the minimum booking
// duration counts as booked, consistent with the minimum-duration rule.
func (e *Engine) ClassifyDay(bookings []*domain.Booking, closures []*domain.Closure) DayAvailability {
	for _, c := range closures {
		if c.IsAllDay {
			return DayClosed
		}
	}

	occupied := append(bookingIntervals(bookings), e.closureIntervals(closures)...)
	if len(occupied) == 0 {
		return DayAvailable
	}

	if len(e.FreeIntervals(occupied)) > 0 {
		return DayPartial
	}
	return DayBooked
}

// ClassifyMonth classifies every day of the given month. Bookings and
// closures are supplied pre-grouped by their "YYYY-MM-DD" day key; days with
// no records classify as available. The returned map has one entry per
// calendar day of the month.
func (e *Engine) ClassifyMonth(
	year int,
	month time.Month,
	perDayBookings map[string][]*domain.Booking,
	perDayClosures map[string][]*domain.Closure,
) map[string]DayAvailability {
	first := time.Date(year, month, 1, 0, 0, 0, 0, e.cfg.Location)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	result := make(map[string]DayAvailability, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		key := time.Date(year, month, day, 0, 0, 0, 0, e.cfg.Location).Format(domain.DateFormat)
		result[key] = e.ClassifyDay(perDayBookings[key], perDayClosures[key])
	}

	return result
}
