package get_month_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/ORS-RoomBookingService/internal/schedule"
	"github.com/m04kA/ORS-RoomBookingService/pkg/ptr"
)

// UseCase use case для классификации доступности комнаты по дням месяца
type UseCase struct {
	bookingRepo BookingRepository
	closureRepo ClosureRepository
	roomRepo    RoomRepository
	engine      *schedule.Engine
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	closureRepo ClosureRepository,
	roomRepo RoomRepository,
	engine *schedule.Engine,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		closureRepo: closureRepo,
		roomRepo:    roomRepo,
		engine:      engine,
		logger:      logger,
	}
}

// Execute выполняет use case классификации месяца
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthAvailability: room=%d, period=%d-%02d", req.RoomID, req.Year, int(req.Month))

	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Year < 2000 || req.Year > 2100 {
		return nil, fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}
	if req.Month < time.January || req.Month > time.December {
		return nil, fmt.Errorf("%w: month out of range", ErrInvalidInput)
	}

	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetMonthAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetMonthAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	firstDay := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, uc.engine.Location())
	lastDay := firstDay.AddDate(0, 1, -1)

	bookings, err := uc.bookingRepo.GetByRoomWithFilter(ctx, domain.RoomBookingsFilter{
		RoomID:    req.RoomID,
		StartDate: ptr.Ptr(firstDay),
		EndDate:   ptr.Ptr(lastDay),
	})
	if err != nil {
		uc.logger.Error("GetMonthAvailability: failed to get bookings for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	closures, err := uc.closureRepo.GetByRoomAndDateRange(ctx, req.RoomID, firstDay, lastDay)
	if err != nil {
		uc.logger.Error("GetMonthAvailability: failed to get closures for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
	}

	// Группируем записи по дням
	perDayBookings := make(map[string][]*domain.Booking)
	for _, b := range bookings {
		key := b.Date.Format(domain.DateFormat)
		perDayBookings[key] = append(perDayBookings[key], b)
	}
	perDayClosures := make(map[string][]*domain.Closure)
	for _, c := range closures {
		key := c.Date.Format(domain.DateFormat)
		perDayClosures[key] = append(perDayClosures[key], c)
	}

	byDay := uc.engine.ClassifyMonth(req.Year, req.Month, perDayBookings, perDayClosures)

	days := make(map[string]string, len(byDay))
	for key, status := range byDay {
		days[key] = string(status)
	}

	uc.logger.Info("GetMonthAvailability: classified %d days for room=%d", len(days), req.RoomID)
	return &Response{
		RoomID: req.RoomID,
		Year:   req.Year,
		Month:  int(req.Month),
		Days:   days,
	}, nil
}
