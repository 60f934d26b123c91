package closures

import (
	"context"
	"time"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
)

// ClosureRepository интерфейс репозитория закрытий комнат
type ClosureRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Closure, error)
	GetByRoomAndDateRange(ctx context.Context, roomID int64, startDate, endDate time.Time) ([]*domain.Closure, error)
	Delete(ctx context.Context, id int64) error
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// AdminChecker проверяет права администратора
type AdminChecker interface {
	IsAdmin(userID int64) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
