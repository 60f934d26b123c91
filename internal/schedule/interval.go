package schedule

import (
	"fmt"
	"sort"

	"github.com/m04kA/ORS-RoomBookingService/pkg/types"
)

// Interval is a half-open time window [Start, End) within a single civil day.
// End is always strictly after Start; inverted and zero-length intervals are
// rejected at construction and never stored.
type Interval struct {
	Start types.TimeOfDay
	End   types.TimeOfDay
}

// NewInterval builds an interval, rejecting inverted and zero-length input.
func NewInterval(start, end types.TimeOfDay) (Interval, error) {
	if !start.Valid() || !end.Valid() {
		return Interval{}, &PolicyError{
			Kind:    PolicyOutsideOfficeHours,
			Message: fmt.Sprintf("time of day out of range: %s-%s", start, end),
		}
	}
	if end <= start {
		return Interval{}, &PolicyError{
			Kind:    PolicyInvertedInterval,
			Message: fmt.Sprintf("interval end %s must be after start %s", end, start),
		}
	}
	return Interval{Start: start, End: end}, nil
}

// Minutes returns the interval length in minutes.
func (iv Interval) Minutes() int {
	return int(iv.End - iv.Start)
}

// Contains reports whether the minute m lies inside the half-open interval.
func (iv Interval) Contains(m types.TimeOfDay) bool {
	return m >= iv.Start && m < iv.End
}

// String returns the "HH:MM-HH:MM" form.
func (iv Interval) String() string {
	return iv.Start.String() + "-" + iv.End.String()
}

// Overlaps is the single overlap predicate for the whole engine: two
// half-open intervals conflict iff a.Start < b.End && a.End > b.Start.
// A candidate whose start equals another interval's end does not overlap,
// which is what makes back-to-back bookings legal.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

// MergeIntervals sorts the intervals by start and merges every overlapping or
// adjacent pair into a single run. The result is sorted, non-overlapping and
// non-adjacent. The input slice is not modified.
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start == sorted[j].Start {
			return sorted[i].End < sorted[j].End
		}
		return sorted[i].Start < sorted[j].Start
	})

	merged := make([]Interval, 0, len(sorted))
	current := sorted[0]

	for _, next := range sorted[1:] {
		// Слитие: смежные интервалы (current.End == next.Start) тоже образуют один прогон
		if current.End >= next.Start {
			if next.End > current.End {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}

	return append(merged, current)
}
