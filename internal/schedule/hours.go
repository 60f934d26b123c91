package schedule

import "fmt"

// OfficeHours is the configured daily open span, split into contiguous
// morning, lunch and afternoon windows. Built once from config at startup
// and immutable for the process lifetime.
type OfficeHours struct {
	Morning   Interval
	Lunch     Interval
	Afternoon Interval
}

// NewOfficeHours validates that the three windows are contiguous and ordered.
func NewOfficeHours(morning, lunch, afternoon Interval) (OfficeHours, error) {
	if morning.End != lunch.Start {
		return OfficeHours{}, fmt.Errorf("office hours: morning %s must end where lunch %s starts", morning, lunch)
	}
	if lunch.End != afternoon.Start {
		return OfficeHours{}, fmt.Errorf("office hours: lunch %s must end where afternoon %s starts", lunch, afternoon)
	}
	return OfficeHours{Morning: morning, Lunch: lunch, Afternoon: afternoon}, nil
}

// Span returns the full office-hours interval, open to close.
func (h OfficeHours) Span() Interval {
	return Interval{Start: h.Morning.Start, End: h.Afternoon.End}
}

// ContainsInterval reports whether the candidate lies fully inside the
// office-hours span.
func (h OfficeHours) ContainsInterval(iv Interval) bool {
	span := h.Span()
	return iv.Start >= span.Start && iv.End <= span.End
}

// CrossesLunch reports whether the interval starts before the lunch window
// and ends after it.
func (h OfficeHours) CrossesLunch(iv Interval) bool {
	return iv.Start < h.Lunch.Start && iv.End > h.Lunch.End
}

// IsFullSpan reports whether the interval is exactly the whole working day,
// the one case where crossing the lunch window is allowed.
func (h OfficeHours) IsFullSpan(iv Interval) bool {
	return iv == h.Span()
}
