package schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// BookingRepository интерфейс хранилища броней переговорной
type BookingRepository interface {
	Cancel(date domain.DateKey, start types.TimeString, callerID int64) error
	GetByOwner(ownerID int64) []domain.Booking
	GetAll() []domain.Booking
}

// StatusRepository интерфейс календаря статусов работы
type StatusRepository interface {
	GetWindow(userID int64, today domain.DateKey) []domain.StatusEntry
	Toggle(userID int64, date domain.DateKey, today domain.DateKey) (domain.WorkStatus, error)
}

// CommentRepository интерфейс доски заметок
type CommentRepository interface {
	Set(userID int64, date domain.DateKey, text string) error
	Get(userID int64, date domain.DateKey) (string, error)
	Delete(userID int64, date domain.DateKey) error
	GetByUser(userID int64) []domain.Comment
	PurgeUser(userID int64) int
}

// AccessRepository интерфейс реестра прав доступа
type AccessRepository interface {
	IsAdmin(userID int64) bool
	IsRestricted(userID int64) bool
	Restrict(userID int64)
	Unrestrict(userID int64) error
	Promote(userID int64) error
	Demote(targetID, callerID int64) error
}

// ProfileRepository интерфейс хранилища профилей пользователей
type ProfileRepository interface {
	Ensure(userID int64, platformName string) domain.UserProfile
	SetDisplayName(userID int64, name string)
	Get(userID int64) (domain.UserProfile, error)
	GetAll() []domain.UserProfile
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production.
// Возвращает время в заданной таймзоне (полночь очистки и границы окна
// статусов считаются в ней же).
type RealTimeProvider struct {
	loc *time.Location
}

// NewRealTimeProvider создает провайдер времени в указанной таймзоне
func NewRealTimeProvider(loc *time.Location) *RealTimeProvider {
	if loc == nil {
		loc = time.Local
	}
	return &RealTimeProvider{loc: loc}
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().In(p.loc)
}
