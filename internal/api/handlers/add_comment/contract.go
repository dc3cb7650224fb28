package add_comment

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type ScheduleService interface {
	AddComment(userID int64, date domain.DateKey, text string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
