package get_timeline

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/ORS-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	getTimeline "github.com/m04kA/ORS-RoomBookingService/internal/usecase/get_timeline"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound  = "комната не найдена"
)

type Handler struct {
	useCase GetTimelineUseCase
	logger  Logger
}

func NewHandler(useCase GetTimelineUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/timeline?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/timeline - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/timeline - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getTimeline.Request{
		RoomID: roomID,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getTimeline.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{roomId}/timeline - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getTimeline.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{roomId}/timeline - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /rooms/{roomId}/timeline - Failed to build timeline: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
