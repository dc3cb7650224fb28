package converse

import (
	"github.com/m04kA/SMC-ScheduleService/internal/conversation"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type ConversationManager interface {
	ExpectName(userID int64)
	ExpectComment(userID int64, date domain.DateKey)
	Consume(userID int64) (conversation.Pending, bool)
}

type ScheduleService interface {
	SetDisplayName(userID int64, name string) error
	AddComment(userID int64, date domain.DateKey, text string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
