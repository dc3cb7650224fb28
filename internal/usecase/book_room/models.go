package book_room

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request входные данные бронирования переговорной
type Request struct {
	OwnerID         int64
	Date            domain.DateKey
	StartTime       types.TimeString
	DurationMinutes int
}

// Response созданная бронь
type Response struct {
	Date            string
	StartTime       string
	EndTime         string
	DurationMinutes int
	OwnerID         int64
}
