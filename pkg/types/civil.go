package types

import "time"

// StartOfDay floors the instant to midnight of its civil day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// EndOfDay returns the last nanosecond of the instant's civil day in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// SameDay reports whether two instants fall on the same civil day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return StartOfDay(a, loc).Equal(StartOfDay(b, loc))
}

// DateInPast reports whether the calendar date is strictly before now's
// civil day in loc. The date's own location is ignored, only its
// year/month/day fields matter.
func DateInPast(date, now time.Time, loc *time.Location) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return dateOnly.Before(StartOfDay(now, loc))
}

// IsPast reports whether the combined civil instant (calendar date + time of
// day, anchored in loc) is strictly before now.
func IsPast(date time.Time, tod TimeOfDay, now time.Time, loc *time.Location) bool {
	return tod.OnDate(date, loc).Before(now)
}
