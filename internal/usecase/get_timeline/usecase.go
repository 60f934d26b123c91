package get_timeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/ORS-RoomBookingService/internal/schedule"
)

// UseCase use case для получения таймлайна комнаты на день
type UseCase struct {
	bookingRepo  BookingRepository
	closureRepo  ClosureRepository
	roomRepo     RoomRepository
	engine       *schedule.Engine
	timeProvider TimeProvider
	logger       Logger
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
		bookingRepo:  bookingRepo,
		closureRepo:  closureRepo,
		roomRepo:     roomRepo,
		engine:       engine,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения таймлайна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTimeline: room=%d, date=%s", req.RoomID, req.Date.Format(domain.DateFormat))

	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetTimeline: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetTimeline: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetActiveByRoomAndDate(ctx, req.RoomID, req.Date)
	if err != nil {
		uc.logger.Error("GetTimeline: failed to get bookings for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	closures, err := uc.closureRepo.GetActiveByRoomAndDate(ctx, req.RoomID, req.Date)
	if err != nil {
		uc.logger.Error("GetTimeline: failed to get closures for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
	}

	points := uc.engine.GenerateTimePoints(bookings, closures, req.Date, uc.timeProvider.Now())

	resp := &Response{
		RoomID: req.RoomID,
		Date:   req.Date.Format(domain.DateFormat),
		Points: make([]TimePoint, 0, len(points)),
	}
	for _, p := range points {
		resp.Points = append(resp.Points, TimePoint{
			Time:       p.Time.String(),
			Status:     string(p.Status),
			CanBeStart: p.CanBeStart,
			CanBeEnd:   p.CanBeEnd,
			Period:     string(p.Period),
		})
	}

	uc.logger.Info("GetTimeline: built %d points for room=%d", len(resp.Points), req.RoomID)
	return resp, nil
}
