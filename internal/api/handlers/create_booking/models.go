package create_booking

import (
	"time"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	createBooking "github.com/m04kA/ORS-RoomBookingService/internal/usecase/create_booking"
	"github.com/m04kA/ORS-RoomBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID    int64  `json:"roomId"`
	Date      string `json:"date"`      // "2025-11-17"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:30"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	UserID    int64  `json:"userId"`
	RoomID    int64  `json:"roomId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ConflictResponse HTTP response при конфликте интервалов
type ConflictResponse struct {
	Error     string   `json:"error"`
	Conflicts []string `json:"conflicts"` // ["10:00-11:00", ...]
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    userID,
		RoomID:    r.RoomID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		Reference: resp.Reference,
		UserID:    resp.UserID,
		RoomID:    resp.RoomID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
