package create_closure

import (
	"time"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	createClosure "github.com/m04kA/ORS-RoomBookingService/internal/usecase/create_closure"
	"github.com/m04kA/ORS-RoomBookingService/pkg/types"
)

// CreateClosureRequest HTTP request model
type CreateClosureRequest struct {
	Date     string `json:"date"` // "2025-11-17"
	IsAllDay bool   `json:"isAllDay"`

	// Обязательны, когда isAllDay == false
	StartTime *string `json:"startTime,omitempty"` // "10:00"
	EndTime   *string `json:"endTime,omitempty"`   // "12:00"

	Reason string `json:"reason"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateClosureRequest) ToUseCaseRequest(userID, roomID int64) (*createClosure.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &createClosure.Request{
		UserID:   userID,
		RoomID:   roomID,
		Date:     date,
		IsAllDay: r.IsAllDay,
		Reason:   r.Reason,
	}

	if r.StartTime != nil {
		start, err := types.ParseTimeOfDay(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &start
	}
	if r.EndTime != nil {
		end, err := types.ParseTimeOfDay(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &end
	}

	return req, nil
}
