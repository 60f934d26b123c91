package suggest_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/ORS-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	suggestSlots "github.com/m04kA/ORS-RoomBookingService/internal/usecase/suggest_slots"
)

const (
	msgInvalidRoomID   = "некорректный ID комнаты"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration = "некорректная длительность, ожидается число минут"
	msgRoomNotFound    = "комната не найдена"
)

type Handler struct {
	useCase SuggestSlotsUseCase
	logger  Logger
}

func NewHandler(useCase SuggestSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/suggestions?date=YYYY-MM-DD&duration=60
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/suggestions - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/suggestions - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration, err := strconv.Atoi(r.URL.Query().Get("duration"))
	if err != nil || duration <= 0 {
		h.logger.Warn("GET /rooms/{roomId}/suggestions - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &suggestSlots.Request{
		RoomID:          roomID,
		Date:            date,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, suggestSlots.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{roomId}/suggestions - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, suggestSlots.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{roomId}/suggestions - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /rooms/{roomId}/suggestions - Failed to suggest slots: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
