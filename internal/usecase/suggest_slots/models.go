package suggest_slots

import "time"

// Request модель запроса на подбор слотов
type Request struct {
	RoomID          int64     // ID комнаты
	Date            time.Time // Дата (без времени)
	DurationMinutes int       // Желаемая длительность в минутах
}

// Slot предложенный слот
type Slot struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "10:00"
	Score     int    `json:"score"`
}

// Response модель ответа с предложенными слотами
type Response struct {
	RoomID int64  `json:"roomId"`
	Date   string `json:"date"` // "2025-11-17"
	Slots  []Slot `json:"slots"`
}
