package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/ORS-RoomBookingService/internal/schedule"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	closureRepo  ClosureRepository
	roomRepo     RoomRepository
	engine       *schedule.Engine
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	closureRepo ClosureRepository,
	roomRepo RoomRepository,
	engine *schedule.Engine,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		closureRepo:  closureRepo,
		roomRepo:     roomRepo,
		engine:       engine,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверки и вставка идут в сериализуемой транзакции; уникальный индекс БД
// остаётся финальной защитой от гонки двух одновременных вставок
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, room=%d, date=%s, interval=%s-%s",
		req.UserID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Кандидатский интервал (проверяет инверсию и нулевую длину)
	candidate, err := schedule.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid interval %s-%s: %v", req.StartTime, req.EndTime, err)
		return nil, err
	}

	// 3. Текущее время фиксируем один раз на всю операцию
	now := uc.timeProvider.Now()

	// 4. Комната должна существовать и быть активной
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	if !room.IsActive {
		uc.logger.Warn("CreateBooking: room id=%d is inactive", req.RoomID)
		return nil, ErrRoomUnavailable
	}

	var result *domain.Booking

	// 5. Проверка политики, конфликтов и вставка в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookingRepo.GetActiveByRoomAndDate(txCtx, req.RoomID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		closures, err := uc.closureRepo.GetActiveByRoomAndDate(txCtx, req.RoomID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get closures: %v", err)
			return fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
		}

		// Политики и конфликты проверяются движком на материализованном дне
		if err := uc.engine.ValidateBooking(candidate, req.Date, now, bookings, closures); err != nil {
			uc.logger.Warn("CreateBooking: booking rejected for room=%d: %v", req.RoomID, err)
			return err
		}

		booking := &domain.Booking{
			Reference: uuid.NewString(),
			UserID:    req.UserID,
			RoomID:    req.RoomID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Status:    domain.StatusBooked,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				// Конкурирующая вставка выиграла гонку
				uc.logger.Warn("CreateBooking: slot taken by concurrent booking, room=%d", req.RoomID)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d reference=%s", result.ID, result.Reference)

	return &Response{
		ID:        result.ID,
		Reference: result.Reference,
		UserID:    result.UserID,
		RoomID:    result.RoomID,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
