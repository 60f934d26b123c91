package create_closure

import (
	"time"

	"github.com/m04kA/ORS-RoomBookingService/pkg/types"
)

// Request модель запроса на создание закрытия комнаты
type Request struct {
	UserID   int64     // ID администратора
	RoomID   int64     // ID комнаты
	Date     time.Time // Дата закрытия (без времени)
	IsAllDay bool      // Закрытие на весь день

	// Обязательны, когда IsAllDay == false
	StartTime *types.TimeOfDay
	EndTime   *types.TimeOfDay

	Reason string // Причина закрытия
}

// AffectedBooking бронирование, попавшее в закрываемый интервал.
// Закрытие не отменяет такие бронирования автоматически - администратор
// видит список и решает сам
type AffectedBooking struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	UserID    int64  `json:"userId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Response модель ответа с созданным закрытием
type Response struct {
	ID       int64  `json:"id"`
	RoomID   int64  `json:"roomId"`
	Date     string `json:"date"` // "2025-11-17"
	IsAllDay bool   `json:"isAllDay"`

	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`

	Reason    string `json:"reason"`
	CreatedBy int64  `json:"createdBy"`

	// Активные бронирования, пересекающиеся с закрытием
	AffectedBookings []AffectedBooking `json:"affectedBookings"`

	CreatedAt time.Time `json:"createdAt"`
}
