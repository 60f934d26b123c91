package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/ORS-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/ORS-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/ORS-RoomBookingService/internal/schedule"
	createBooking "github.com/m04kA/ORS-RoomBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgUnauthorized       = "пользователь не аутентифицирован"
	msgRoomNotFound       = "комната не найдена"
	msgRoomUnavailable    = "комната недоступна для бронирования"
	msgSlotTaken          = "выбранный интервал уже занят"
	msgIntervalConflict   = "интервал пересекается с существующими бронированиями"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var policyErr *schedule.PolicyError
		var conflictErr *schedule.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Interval conflict: user_id=%d, room_id=%d", userID, req.RoomID)
			conflicts := make([]string, 0, len(conflictErr.Conflicts))
			for _, iv := range conflictErr.Conflicts {
				conflicts = append(conflicts, iv.String())
			}
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:     msgIntervalConflict,
				Conflicts: conflicts,
			})

		case errors.As(err, &policyErr):
			h.logger.Warn("POST /bookings - Policy violation: user_id=%d, room_id=%d, error=%v",
				userID, req.RoomID, policyErr)
			handlers.RespondError(w, http.StatusUnprocessableEntity, policyErr.Message)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomUnavailable):
			h.logger.Warn("POST /bookings - Room unavailable: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomUnavailable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, room_id=%d, error=%v",
				userID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, room_id=%d",
		result.ID, userID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
