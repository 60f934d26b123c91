package create_closure

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_closure: room not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав администратора
	ErrAccessDenied = errors.New("create_closure: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_closure: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_closure: internal error")
)
