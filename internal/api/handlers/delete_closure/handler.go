package delete_closure

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ORS-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/ORS-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/ORS-RoomBookingService/internal/service/closures"
	"github.com/m04kA/ORS-RoomBookingService/internal/service/closures/models"
)

const (
	msgInvalidClosureID = "некорректный ID закрытия"
	msgUnauthorized     = "пользователь не аутентифицирован"
	msgAccessDenied     = "требуются права администратора"
	msgClosureNotFound  = "закрытие не найдено"
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

// Handle DELETE /api/v1/closures/{closureId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	closureID, err := strconv.ParseInt(vars["closureId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /closures/{closureId} - Invalid closure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClosureID)
		return
	}

	err = h.service.Delete(r.Context(), &models.DeleteClosureRequest{
		UserID:    userID,
		ClosureID: closureID,
	})
	if err != nil {
		switch {
		case errors.Is(err, closures.ErrAccessDenied):
			h.logger.Warn("DELETE /closures/{closureId} - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, closures.ErrClosureNotFound):
			h.logger.Warn("DELETE /closures/{closureId} - Closure not found: closure_id=%d", closureID)
			handlers.RespondNotFound(w, msgClosureNotFound)

		default:
			h.logger.Error("DELETE /closures/{closureId} - Failed to delete closure: closure_id=%d, error=%v",
				closureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /closures/{closureId} - Closure deleted: closure_id=%d, user_id=%d", closureID, userID)
	w.WriteHeader(http.StatusNoContent)
}
