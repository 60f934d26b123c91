package create_closure

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/ORS-RoomBookingService/internal/schedule"
	"github.com/m04kA/ORS-RoomBookingService/pkg/types"
)

// UseCase use case для создания закрытия комнаты
type UseCase struct {
	closureRepo  ClosureRepository
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	engine       *schedule.Engine
	admins       AdminChecker
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	closureRepo ClosureRepository,
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	engine *schedule.Engine,
	admins AdminChecker,
	logger Logger,
) *UseCase {
	return &UseCase{
		closureRepo:  closureRepo,
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		engine:       engine,
		admins:       admins,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания закрытия
// Закрытие не отменяет пересекающиеся бронирования - они возвращаются
// администратору списком для ручного решения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateClosure: user=%d, room=%d, date=%s, allDay=%t",
		req.UserID, req.RoomID, req.Date.Format(domain.DateFormat), req.IsAllDay)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateClosure: validation failed: %v", err)
		return nil, err
	}

	if !uc.admins.IsAdmin(req.UserID) {
		uc.logger.Warn("CreateClosure: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	// Закрывать прошедшие дни бессмысленно
	if types.DateInPast(req.Date, uc.timeProvider.Now(), uc.engine.Location()) {
		uc.logger.Warn("CreateClosure: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: date is in the past", ErrInvalidInput)
	}

	// Интервал закрытия: весь рабочий день либо заданное окно в его пределах
	span := uc.engine.Hours().Span()
	if !req.IsAllDay {
		iv, err := schedule.NewInterval(*req.StartTime, *req.EndTime)
		if err != nil {
			uc.logger.Warn("CreateClosure: invalid interval %s-%s: %v", req.StartTime, req.EndTime, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if !uc.engine.Hours().ContainsInterval(iv) {
			uc.logger.Warn("CreateClosure: interval %s outside office hours", iv)
			return nil, fmt.Errorf("%w: closure interval is outside office hours", ErrInvalidInput)
		}
		span = iv
	}

	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateClosure: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateClosure: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// Собираем активные бронирования, попадающие в закрываемый интервал
	bookings, err := uc.bookingRepo.GetActiveByRoomAndDate(ctx, req.RoomID, req.Date)
	if err != nil {
		uc.logger.Error("CreateClosure: failed to get bookings for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	affected := make([]AffectedBooking, 0)
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		iv := schedule.Interval{Start: b.StartTime, End: b.EndTime}
		if schedule.Overlaps(span, iv) {
			affected = append(affected, AffectedBooking{
				ID:        b.ID,
				Reference: b.Reference,
				UserID:    b.UserID,
				StartTime: b.StartTime.String(),
				EndTime:   b.EndTime.String(),
			})
		}
	}

	closure := &domain.Closure{
		RoomID:    req.RoomID,
		Date:      req.Date,
		IsAllDay:  req.IsAllDay,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
		CreatedBy: req.UserID,
	}

	created, err := uc.closureRepo.Create(ctx, closure)
	if err != nil {
		uc.logger.Error("CreateClosure: failed to create closure: %v", err)
		return nil, fmt.Errorf("%w: failed to create closure: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateClosure: successfully created closure id=%d, affected bookings=%d",
		created.ID, len(affected))

	resp := &Response{
		ID:               created.ID,
		RoomID:           created.RoomID,
		Date:             created.Date.Format(domain.DateFormat),
		IsAllDay:         created.IsAllDay,
		Reason:           created.Reason,
		CreatedBy:        created.CreatedBy,
		AffectedBookings: affected,
		CreatedAt:        created.CreatedAt,
	}
	if created.StartTime != nil {
		start := created.StartTime.String()
		resp.StartTime = &start
	}
	if created.EndTime != nil {
		end := created.EndTime.String()
		resp.EndTime = &end
	}

	return resp, nil
}
