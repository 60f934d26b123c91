package get_room_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/ORS-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/ORS-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	"github.com/m04kA/ORS-RoomBookingService/internal/service/bookings"
	"github.com/m04kA/ORS-RoomBookingService/internal/service/bookings/models"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnauthorized  = "пользователь не аутентифицирован"
	msgAccessDenied  = "доступ запрещен"
	msgRoomNotFound  = "комната не найдена"
	msgInvalidFilter = "некорректные параметры фильтрации"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/bookings (только для администратора)
// Опциональные query параметры: startDate, endDate, status, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/bookings - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	req := &models.GetRoomBookingsRequest{
		UserID: userID,
		RoomID: roomID,
	}

	query := r.URL.Query()
	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /rooms/{roomId}/bookings - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}
	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /rooms/{roomId}/bookings - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	req.IncludeInactive = query.Get("includeInactive") == "true"

	result, err := h.service.GetRoomBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /rooms/{roomId}/bookings - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{roomId}/bookings - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{roomId}/bookings - Invalid filter: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /rooms/{roomId}/bookings - Failed to get bookings: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
