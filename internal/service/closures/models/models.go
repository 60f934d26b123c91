package models

import (
	"time"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
)

// Request модели

// ListClosuresRequest запрос на получение закрытий комнаты за период
type ListClosuresRequest struct {
	RoomID    int64     `json:"roomId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// DeleteClosureRequest запрос на удаление закрытия
type DeleteClosureRequest struct {
	UserID    int64 `json:"userId"`
	ClosureID int64 `json:"closureId"`
}

// Response модели

// ClosureResponse ответ с данными закрытия
type ClosureResponse struct {
	ID       int64  `json:"id"`
	RoomID   int64  `json:"roomId"`
	Date     string `json:"date"` // "2025-11-17"
	IsAllDay bool   `json:"isAllDay"`

	StartTime *string `json:"startTime,omitempty"` // "10:00", nil для закрытия на весь день
	EndTime   *string `json:"endTime,omitempty"`

	Reason    string `json:"reason"`
	CreatedBy int64  `json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
}

// ClosureListResponse ответ со списком закрытий
type ClosureListResponse struct {
	Closures []ClosureResponse `json:"closures"`
}

// Методы конвертации

// FromDomainClosure конвертирует domain модель в DTO
func FromDomainClosure(c *domain.Closure) *ClosureResponse {
	if c == nil {
		return nil
	}

	resp := &ClosureResponse{
		ID:        c.ID,
		RoomID:    c.RoomID,
		Date:      c.Date.Format(domain.DateFormat),
		IsAllDay:  c.IsAllDay,
		Reason:    c.Reason,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
	}

	if c.StartTime != nil {
		start := c.StartTime.String()
		resp.StartTime = &start
	}
	if c.EndTime != nil {
		end := c.EndTime.String()
		resp.EndTime = &end
	}

	return resp
}

// FromDomainClosureList конвертирует список domain моделей в DTO
func FromDomainClosureList(closures []*domain.Closure) *ClosureListResponse {
	result := make([]ClosureResponse, 0, len(closures))
	for _, c := range closures {
		if resp := FromDomainClosure(c); resp != nil {
			result = append(result, *resp)
		}
	}
	return &ClosureListResponse{Closures: result}
}
