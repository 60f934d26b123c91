package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomUnavailable возвращается, когда комната выведена из эксплуатации
	ErrRoomUnavailable = errors.New("create_booking: room is not available for booking")

	// ErrSlotTaken возвращается, когда слот занят конкурирующим бронированием.
	// Уникальный индекс в БД - финальный арбитр при гонке двух вставок;
	// ошибка показывается пользователю как конфликт и не повторяется.
	ErrSlotTaken = errors.New("create_booking: slot already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
