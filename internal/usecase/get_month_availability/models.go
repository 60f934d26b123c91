package get_month_availability

import "time"

// Request модель запроса на классификацию месяца
type Request struct {
	RoomID int64      // ID комнаты
	Year   int        // Год (например, 2025)
	Month  time.Month // Месяц (1-12)
}

// Response модель ответа: статус каждого дня месяца
type Response struct {
	RoomID int64             `json:"roomId"`
	Year   int               `json:"year"`
	Month  int               `json:"month"`
	Days   map[string]string `json:"days"` // "2025-11-17" -> available | partial | booked | closed
}
