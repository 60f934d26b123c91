package models

import "github.com/m04kA/ORS-RoomBookingService/internal/domain"

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Floor    int    `json:"floor"`
	Capacity int    `json:"capacity"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}
	return &RoomResponse{
		ID:       r.ID,
		Name:     r.Name,
		Floor:    r.Floor,
		Capacity: r.Capacity,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	result := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		if resp := FromDomainRoom(r); resp != nil {
			result = append(result, *resp)
		}
	}
	return &RoomListResponse{Rooms: result}
}
