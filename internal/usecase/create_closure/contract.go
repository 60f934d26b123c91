package create_closure

import (
	"context"
	"time"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
)

// ClosureRepository интерфейс репозитория закрытий
type ClosureRepository interface {
	Create(ctx context.Context, closure *domain.Closure) (*domain.Closure, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// AdminChecker проверяет права администратора
type AdminChecker interface {
	IsAdmin(userID int64) bool
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
