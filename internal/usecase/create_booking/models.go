package create_booking

import (
	"time"

	"github.com/m04kA/ORS-RoomBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64           // ID пользователя
	RoomID    int64           // ID комнаты
	Date      time.Time       // Дата бронирования (без времени)
	StartTime types.TimeOfDay // Начало интервала, включительно
	EndTime   types.TimeOfDay // Конец интервала, не включительно
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64           // ID созданного бронирования
	Reference string          // Публичный идентификатор (uuid)
	UserID    int64           // ID пользователя
	RoomID    int64           // ID комнаты
	Date      time.Time       // Дата бронирования
	StartTime types.TimeOfDay // Начало интервала
	EndTime   types.TimeOfDay // Конец интервала
	Status    string          // Статус бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
