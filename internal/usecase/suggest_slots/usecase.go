package suggest_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/ORS-RoomBookingService/internal/schedule"
)

// UseCase use case для подбора свободных слотов
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

// Execute выполняет use case подбора слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestSlots: room=%d, date=%s, duration=%d",
		req.RoomID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("SuggestSlots: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("SuggestSlots: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetActiveByRoomAndDate(ctx, req.RoomID, req.Date)
	if err != nil {
		uc.logger.Error("SuggestSlots: failed to get bookings for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	closures, err := uc.closureRepo.GetActiveByRoomAndDate(ctx, req.RoomID, req.Date)
	if err != nil {
		uc.logger.Error("SuggestSlots: failed to get closures for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
	}

	suggestions := uc.engine.SuggestSlots(bookings, closures, req.Date, uc.timeProvider.Now(), req.DurationMinutes)

	resp := &Response{
		RoomID: req.RoomID,
		Date:   req.Date.Format(domain.DateFormat),
		Slots:  make([]Slot, 0, len(suggestions)),
	}
	for _, s := range suggestions {
		resp.Slots = append(resp.Slots, Slot{
			StartTime: s.Interval.Start.String(),
			EndTime:   s.Interval.End.String(),
			Score:     s.Score,
		})
	}

	uc.logger.Info("SuggestSlots: suggested %d slots for room=%d", len(resp.Slots), req.RoomID)
	return resp, nil
}
