package set_display_name

type ScheduleService interface {
	SetDisplayName(userID int64, name string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
