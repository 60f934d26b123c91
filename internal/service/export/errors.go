package export

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrInvalidPeriod возвращается при некорректном годе или месяце
	ErrInvalidPeriod = errors.New("invalid report period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
