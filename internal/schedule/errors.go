package schedule

import (
	"fmt"
	"strings"
)

// PolicyKind identifies which booking rule a candidate interval violated.
type PolicyKind string

const (
	PolicyInvertedInterval   PolicyKind = "inverted_interval"
	PolicyTooShort           PolicyKind = "too_short"
	PolicyTooLong            PolicyKind = "too_long"
	PolicyOutsideOfficeHours PolicyKind = "outside_office_hours"
	PolicyCrossesLunchBreak  PolicyKind = "crosses_lunch_break"
	PolicyOutOfAdvanceRange  PolicyKind = "out_of_advance_range"
	PolicyPastTime           PolicyKind = "past_time"
	PolicyCancelTooLate      PolicyKind = "cancel_too_late"
)

// PolicyError is a domain-rule rejection, surfaced verbatim to the end user
// as the rejection reason. Never fatal.
type PolicyError struct {
	Kind    PolicyKind
	Message string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("booking policy violation (%s): %s", e.Kind, e.Message)
}

// IsPolicyKind reports whether err is a PolicyError of the given kind.
func IsPolicyKind(err error, kind PolicyKind) bool {
	pe, ok := err.(*PolicyError)
	return ok && pe.Kind == kind
}

// ConflictError is returned when a candidate interval overlaps existing
// bookings or closures. Conflicts lists every overlapping occupied interval
// so callers can report a complete reason.
type ConflictError struct {
	Conflicts []Interval
}

func (e *ConflictError) Error() string {
	parts := make([]string, len(e.Conflicts))
	for i, iv := range e.Conflicts {
		parts[i] = iv.String()
	}
	return fmt.Sprintf("slot unavailable, conflicts with %s", strings.Join(parts, ", "))
}
