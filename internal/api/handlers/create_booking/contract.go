package create_booking

import (
	bookRoom "github.com/m04kA/SMC-ScheduleService/internal/usecase/book_room"
)

type BookRoomUseCase interface {
	Execute(req *bookRoom.Request) (*bookRoom.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
