package domain

import (
	"time"

	"github.com/m04kA/ORS-RoomBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusBooked    BookingStatus = "booked"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a room reservation in the system
type Booking struct {
	ID        int64
	Reference string // public identifier (uuid), exposed in API responses
	UserID    int64
	RoomID    int64
	Date      time.Time // civil day, time-truncated
	StartTime types.TimeOfDay
	EndTime   types.TimeOfDay

	Status BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot.
// Only active bookings participate in conflict and availability computation.
func (b *Booking) IsActive() bool {
	return b.Status == StatusBooked
}

// CanBeCancelled returns true if the booking can still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusBooked
}

// DurationMinutes returns the booked interval length in minutes.
func (b *Booking) DurationMinutes() int {
	return int(b.EndTime - b.StartTime)
}

// RoomBookingsFilter фильтр для получения бронирований комнаты
type RoomBookingsFilter struct {
	RoomID          int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально, если nil - без ограничения)
	EndDate         *time.Time     // Конец периода (опционально, если nil - без ограничения)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
