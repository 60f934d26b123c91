package list_closures

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/ORS-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	"github.com/m04kA/ORS-RoomBookingService/internal/service/closures"
	"github.com/m04kA/ORS-RoomBookingService/internal/service/closures/models"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgInvalidPeriod = "некорректные параметры startDate и endDate"
	msgRoomNotFound  = "комната не найдена"
)

type Handler struct {
	service ClosureService
	logger  Logger
}

func NewHandler(service ClosureService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/closures?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/closures - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, r.URL.Query().Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/closures - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	endDate, err := time.Parse(domain.DateFormat, r.URL.Query().Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/closures - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListClosuresRequest{
		RoomID:    roomID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, closures.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{roomId}/closures - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, closures.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{roomId}/closures - Invalid period: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /rooms/{roomId}/closures - Failed to list closures: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
