package book_room

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда слот пересекается с существующей
	// бронью или уже занят
	ErrSlotNotAvailable = errors.New("book_room: slot not available")

	// ErrUnauthorized возвращается для заблокированных пользователей
	ErrUnauthorized = errors.New("book_room: operation not permitted")

	// ErrInvalidDate возвращается для даты в прошлом
	ErrInvalidDate = errors.New("book_room: booking date is in the past")

	// ErrInvalidDuration возвращается для недопустимой длительности брони
	ErrInvalidDuration = errors.New("book_room: invalid booking duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_room: invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("book_room: internal error")
)
