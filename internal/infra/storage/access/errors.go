package access

import "errors"

var (
	// ErrNotRestricted возвращается при снятии блокировки с незаблокированного
	// пользователя
	ErrNotRestricted = errors.New("access.repository: user is not restricted")

	// ErrAlreadyAdmin возвращается при повторном назначении администратора
	ErrAlreadyAdmin = errors.New("access.repository: user is already an admin")

	// ErrNotAdmin возвращается при снятии прав с пользователя, который не
	// является администратором
	ErrNotAdmin = errors.New("access.repository: user is not an admin")

	// ErrSelfDemote возвращается при попытке администратора снять права с
	// самого себя
	ErrSelfDemote = errors.New("access.repository: admin cannot demote themselves")
)
