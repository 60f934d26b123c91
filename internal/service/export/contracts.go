package export

import (
	"context"
	"time"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	"github.com/m04kA/ORS-RoomBookingService/internal/schedule"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByRoomWithFilter(ctx context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error)
}

// ClosureRepository интерфейс репозитория закрытий
type ClosureRepository interface {
	GetByRoomAndDateRange(ctx context.Context, roomID int64, startDate, endDate time.Time) ([]*domain.Closure, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// AvailabilityClassifier вычисляет доступность комнаты по дням месяца
type AvailabilityClassifier interface {
	ClassifyMonth(
		year int,
		month time.Month,
		perDayBookings map[string][]*domain.Booking,
		perDayClosures map[string][]*domain.Closure,
	) map[string]schedule.DayAvailability
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
