package book_room

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if !domain.IsValidDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: %d minutes (allowed: %v)",
			ErrInvalidDuration, req.DurationMinutes, domain.AllowedDurationsMinutes)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(date domain.DateKey, now time.Time) error {
	if date.Before(domain.DateKeyFromTime(now)) {
		return ErrInvalidDate
	}
	return nil
}
