package manage_access

type ScheduleService interface {
	Restrict(actingAdminID, targetID int64) error
	Unrestrict(actingAdminID, targetID int64) error
	Promote(actingAdminID, targetID int64) error
	Demote(actingAdminID, targetID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
