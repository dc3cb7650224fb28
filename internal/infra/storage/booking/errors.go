package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронь не найдена
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotConflict возвращается, когда бронь пересекается с существующей
	ErrSlotConflict = errors.New("booking.repository: slot conflict")

	// ErrNotOwner возвращается при попытке отменить чужую бронь
	ErrNotOwner = errors.New("booking.repository: caller is not the booking owner")
)
