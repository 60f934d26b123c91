package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/ORS-RoomBookingService/internal/api/handlers"
	getMonthAvailability "github.com/m04kA/ORS-RoomBookingService/internal/usecase/get_month_availability"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgInvalidPeriod = "некорректные параметры year и month"
	msgRoomNotFound  = "комната не найдена"
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability?year=2025&month=11
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/availability - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /rooms/{roomId}/availability - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthAvailability.Request{
		RoomID: roomID,
		Year:   year,
		Month:  time.Month(month),
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonthAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{roomId}/availability - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getMonthAvailability.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{roomId}/availability - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /rooms/{roomId}/availability - Failed to classify month: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
