package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the number of minutes in a civil day.
const MinutesPerDay = 24 * 60

// TimeOfDay represents a wall-clock instant within a civil day as minutes
// since midnight (0..1439). It round-trips losslessly with the canonical
// two-digit-padded "HH:MM" string form.
type TimeOfDay int

// FormatError is returned when a time string does not match "H:MM"/"HH:MM"
// with a valid hour and minute.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time of day %q, expected HH:MM", e.Input)
}

// ParseTimeOfDay parses "H:MM" or "HH:MM" into a TimeOfDay. Only plain
// digits are accepted: no signs, spaces or extra leading zeros.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, &FormatError{Input: s}
	}
	if !allDigits(parts[0]) || !allDigits(parts[1]) {
		return 0, &FormatError{Input: s}
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &FormatError{Input: s}
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &FormatError{Input: s}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, &FormatError{Input: s}
	}

	return TimeOfDay(hour*60 + minute), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NewTimeOfDay extracts the minute-of-day from a time.Time.
func NewTimeOfDay(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// String returns the canonical two-digit-padded "HH:MM" form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Valid reports whether the value lies within a single civil day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// IsBefore reports whether t is strictly before other.
func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t < other
}

// IsAfter reports whether t is strictly after other.
func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t > other
}

// AddMinutes returns t shifted forward by the given number of minutes.
// The result may exceed the day boundary; callers validate where it matters.
func (t TimeOfDay) AddMinutes(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// OnDate anchors the time of day to the date's calendar day in loc. The
// date's own location is ignored: handlers parse "YYYY-MM-DD" in UTC, but
// the resulting instant must land on that civil day in the configured
// timezone.
func (t TimeOfDay) OnDate(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), int(t)/60, int(t)%60, 0, 0, loc)
}

// Value implements driver.Valuer, storing the canonical "HH:MM" form.
func (t TimeOfDay) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("time of day out of range: %d", int(t))
	}
	return t.String(), nil
}

// Scan implements sql.Scanner. Accepts "HH:MM" strings (with or without a
// seconds suffix, as postgres returns for TIME columns) and time.Time values.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		return fmt.Errorf("cannot scan NULL into TimeOfDay")
	case time.Time:
		*t = NewTimeOfDay(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}

func (t *TimeOfDay) scanString(s string) error {
	// "HH:MM:SS" from TIME columns, keep only the leading "HH:MM"
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
