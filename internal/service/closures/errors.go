package closures

import "errors"

var (
	// ErrClosureNotFound возвращается, когда закрытие не найдено
	ErrClosureNotFound = errors.New("closure not found")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав администратора
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
