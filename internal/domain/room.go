package domain

import "time"

// Room represents a bookable meeting room
type Room struct {
	ID       int64
	Name     string
	Floor    int
	Capacity int
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
