package status

import "errors"

var (
	// ErrOutOfWindow возвращается при попытке изменить статус на дату вне
	// скользящего окна
	ErrOutOfWindow = errors.New("status.repository: date outside the rolling window")
)
