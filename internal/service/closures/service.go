package closures

import (
	"context"
	"errors"
	"fmt"

	closureRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/closure"
	roomRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/ORS-RoomBookingService/internal/service/closures/models"
)

// Service сервис для работы с закрытиями комнат
type Service struct {
	closureRepo ClosureRepository
	roomRepo    RoomRepository
	admins      AdminChecker
	logger      Logger
}

// NewService создает новый экземпляр сервиса закрытий
func NewService(
	closureRepo ClosureRepository,
	roomRepo RoomRepository,
	admins AdminChecker,
	logger Logger,
) *Service {
	return &Service{
		closureRepo: closureRepo,
		roomRepo:    roomRepo,
		admins:      admins,
		logger:      logger,
	}
}

// List возвращает закрытия комнаты за период
func (s *Service) List(ctx context.Context, req *models.ListClosuresRequest) (*models.ClosureListResponse, error) {
	s.logger.Info("List: fetching closures for room=%d, period=%s to %s",
		req.RoomID, req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))

	if req.EndDate.Before(req.StartDate) {
		s.logger.Warn("List: invalid period for room=%d", req.RoomID)
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}

	if _, err := s.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("List: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("List: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	closures, err := s.closureRepo.GetByRoomAndDateRange(ctx, req.RoomID, req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Error("List: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d closures for room=%d", len(closures), req.RoomID)
	return models.FromDomainClosureList(closures), nil
}

// Delete удаляет закрытие комнаты
// Доступно только администраторам
func (s *Service) Delete(ctx context.Context, req *models.DeleteClosureRequest) error {
	s.logger.Info("Delete: deleting closure id=%d by user=%d", req.ClosureID, req.UserID)

	if !s.admins.IsAdmin(req.UserID) {
		s.logger.Warn("Delete: access denied for user=%d", req.UserID)
		return ErrAccessDenied
	}

	if err := s.closureRepo.Delete(ctx, req.ClosureID); err != nil {
		if errors.Is(err, closureRepo.ErrClosureNotFound) {
			s.logger.Warn("Delete: closure id=%d not found", req.ClosureID)
			return ErrClosureNotFound
		}
		s.logger.Error("Delete: repository error for closure id=%d: %v", req.ClosureID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted closure id=%d", req.ClosureID)
	return nil
}
