package rooms

import (
	"context"
	"errors"
	"fmt"

	roomRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/ORS-RoomBookingService/internal/service/rooms/models"
)

// Service сервис для работы с переговорными комнатами
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// List возвращает все активные комнаты
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching active rooms")

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%d", id)

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}
