package create_closure

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ORS-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/ORS-RoomBookingService/internal/api/middleware"
	createClosure "github.com/m04kA/ORS-RoomBookingService/internal/usecase/create_closure"
)

const (
	msgInvalidRoomID      = "некорректный ID комнаты"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgUnauthorized       = "пользователь не аутентифицирован"
	msgAccessDenied       = "требуются права администратора"
	msgRoomNotFound       = "комната не найдена"
)

type Handler struct {
	useCase CreateClosureUseCase
	logger  Logger
}

func NewHandler(useCase CreateClosureUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/{roomId}/closures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /rooms/{roomId}/closures - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req CreateClosureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/{roomId}/closures - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, roomID)
	if err != nil {
		h.logger.Warn("POST /rooms/{roomId}/closures - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createClosure.ErrAccessDenied):
			h.logger.Warn("POST /rooms/{roomId}/closures - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, createClosure.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{roomId}/closures - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createClosure.ErrInvalidInput):
			h.logger.Warn("POST /rooms/{roomId}/closures - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /rooms/{roomId}/closures - Failed to create closure: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{roomId}/closures - Closure created: closure_id=%d, room_id=%d, affected=%d",
		result.ID, roomID, len(result.AffectedBookings))
	handlers.RespondJSON(w, http.StatusCreated, result)
}
