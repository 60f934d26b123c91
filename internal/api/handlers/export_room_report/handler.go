package export_room_report

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/ORS-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/ORS-RoomBookingService/internal/service/export"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgInvalidPeriod = "некорректные параметры year и month"
	msgRoomNotFound  = "комната не найдена"
)

type Handler struct {
	service ExportService
	logger  Logger
}

func NewHandler(service ExportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/export?year=2025&month=11
// Отдаёт XLSX отчёт по комнате за месяц
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/export - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/export - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /rooms/{roomId}/export - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	// Отчёт собирается в буфер, чтобы не отдать клиенту обрезанный файл при ошибке
	var buf bytes.Buffer
	filename, err := h.service.BuildRoomMonthReport(r.Context(), &buf, roomID, year, time.Month(month))
	if err != nil {
		switch {
		case errors.Is(err, export.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{roomId}/export - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, export.ErrInvalidPeriod):
			h.logger.Warn("GET /rooms/{roomId}/export - Invalid period: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /rooms/{roomId}/export - Failed to build report: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /rooms/{roomId}/export - Failed to stream report: room_id=%d, error=%v", roomID, err)
	}
}
