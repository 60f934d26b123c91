package create_closure

import (
	"fmt"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Reason == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	if req.IsAllDay {
		if req.StartTime != nil || req.EndTime != nil {
			return fmt.Errorf("%w: all-day closure must not carry an interval", ErrInvalidInput)
		}
		return nil
	}

	if req.StartTime == nil || req.EndTime == nil {
		return fmt.Errorf("%w: startTime and endTime are required for a partial closure", ErrInvalidInput)
	}

	return nil
}
