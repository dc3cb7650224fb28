package schedule

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронь не найдена
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNotOwner возвращается при попытке отменить чужую бронь
	ErrNotOwner = errors.New("caller is not the booking owner")

	// ErrOutOfWindow возвращается при изменении статуса вне 10-дневного окна
	ErrOutOfWindow = errors.New("date outside the status window")

	// ErrCommentNotFound возвращается, когда заметка не найдена
	ErrCommentNotFound = errors.New("comment not found")

	// ErrEmptyComment возвращается при пустом тексте заметки
	ErrEmptyComment = errors.New("empty comment text")

	// ErrUnauthorized возвращается для заблокированных пользователей и при
	// вызове административных операций без прав администратора
	ErrUnauthorized = errors.New("operation not permitted")

	// ErrSelfDemote возвращается при попытке снять права с самого себя
	ErrSelfDemote = errors.New("admin cannot demote themselves")

	// ErrAlreadyAdmin возвращается при повторном назначении администратора
	ErrAlreadyAdmin = errors.New("user is already an admin")

	// ErrNotAdminTarget возвращается при снятии прав с не-администратора
	ErrNotAdminTarget = errors.New("target user is not an admin")

	// ErrNotRestricted возвращается при разблокировке незаблокированного
	// пользователя
	ErrNotRestricted = errors.New("target user is not restricted")

	// ErrEmptyName возвращается, когда отображаемое имя пусто после обрезки
	ErrEmptyName = errors.New("empty display name")

	// ErrNameTooLong возвращается, когда отображаемое имя длиннее лимита
	ErrNameTooLong = errors.New("display name is too long")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
