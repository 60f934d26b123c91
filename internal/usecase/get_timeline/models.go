package get_timeline

import "time"

// Request модель запроса на получение таймлайна
type Request struct {
	RoomID int64     // ID комнаты
	Date   time.Time // Дата (без времени)
}

// TimePoint точка таймлайна
type TimePoint struct {
	Time       string `json:"time"`   // "10:30"
	Status     string `json:"status"` // available | booked | past | closed
	CanBeStart bool   `json:"canBeStart"`
	CanBeEnd   bool   `json:"canBeEnd"`
	Period     string `json:"period"` // morning | afternoon
}

// Response модель ответа с таймлайном комнаты на день
type Response struct {
	RoomID int64       `json:"roomId"`
	Date   string      `json:"date"` // "2025-11-17"
	Points []TimePoint `json:"points"`
}
