package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/ORS-RoomBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	cancelPolicy CancellationPolicy
	admins       AdminChecker
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	cancelPolicy CancellationPolicy,
	admins AdminChecker,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		cancelPolicy: cancelPolicy,
		admins:       admins,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование, администратор - любое
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID && !s.admins.IsAdmin(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetRoomBookings получает бронирования комнаты с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отменённых бронирований
// Доступно только администратору
func (s *Service) GetRoomBookings(ctx context.Context, req *models.GetRoomBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetRoomBookings: fetching bookings for room=%d, user=%d", req.RoomID, req.UserID)

	// Полная история комнаты содержит чужие брони и причины отмен,
	// поэтому доступна только администратору
	if !s.admins.IsAdmin(req.UserID) {
		s.logger.Warn("GetRoomBookings: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	// Комната должна существовать
	if _, err := s.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetRoomBookings: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoomBookings: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomBookings - repository error: %v", ErrInternal, err)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetRoomBookings: invalid filter for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByRoomWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRoomBookings: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRoomBookings: fetched %d bookings for room=%d", len(bookings), req.RoomID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование и только до истечения
// срока уведомления; администратор может отменить любое бронирование в любой момент
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	isAdmin := s.admins.IsAdmin(req.UserID)
	if booking.UserID != req.UserID && !isAdmin {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	// Администратор может отменять без учёта срока уведомления
	if !isAdmin {
		if err := s.cancelPolicy.ValidateCancellation(booking.Date, booking.StartTime, s.timeProvider.Now()); err != nil {
			s.logger.Warn("Cancel: notice period passed for booking id=%d: %v", bookingID, err)
			return ErrCancelTooLate
		}
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Статус успел измениться между чтением и отменой
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}
