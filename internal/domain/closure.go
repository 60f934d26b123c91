package domain

import (
	"time"

	"github.com/m04kA/ORS-RoomBookingService/pkg/types"
)

// Closure represents a temporary administrative closure of a room.
// An all-day closure occupies the entire office-hours span for its date;
// otherwise StartTime and EndTime bound the closed window.
type Closure struct {
	ID       int64
	RoomID   int64
	Date     time.Time // civil day, time-truncated
	IsAllDay bool

	// nil when IsAllDay is true
	StartTime *types.TimeOfDay
	EndTime   *types.TimeOfDay

	Reason    string
	CreatedBy int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasInterval returns true if the closure is bounded by an explicit interval.
func (c *Closure) HasInterval() bool {
	return !c.IsAllDay && c.StartTime != nil && c.EndTime != nil
}
