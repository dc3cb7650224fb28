package create_booking

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	bookRoom "github.com/m04kA/SMC-ScheduleService/internal/usecase/book_room"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date            string `json:"date"`      // "2024-06-10"
	StartTime       string `json:"startTime"` // "09:00"
	DurationMinutes int    `json:"durationMinutes"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	OwnerID         int64  `json:"ownerId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(ownerID int64) (*bookRoom.Request, error) {
	date, err := domain.ParseDateKey(r.Date)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &bookRoom.Request{
		OwnerID:         ownerID,
		Date:            date,
		StartTime:       start,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookRoom.Response) *BookingResponse {
	return &BookingResponse{
		Date:            resp.Date,
		StartTime:       resp.StartTime,
		EndTime:         resp.EndTime,
		DurationMinutes: resp.DurationMinutes,
		OwnerID:         resp.OwnerID,
	}
}
