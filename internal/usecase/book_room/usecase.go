package book_room

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
)

// UseCase use case бронирования переговорной комнаты.
// Проверка конфликта и вставка выполняются под одной блокировкой хранилища,
// поэтому две одновременные брони одного слота не могут пройти проверку обе.
type UseCase struct {
	bookingRepo  BookingRepository
	accessRepo   AccessRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// При timeProvider == nil используется системное время.
func NewUseCase(
	bookingRepo BookingRepository,
	accessRepo AccessRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		accessRepo:   accessRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет бронирование
func (uc *UseCase) Execute(req *Request) (*Response, error) {
	uc.logger.Info("BookRoom: user=%d date=%s start=%s duration=%d",
		req.OwnerID, req.Date, req.StartTime, req.DurationMinutes)

	// 1. Заблокированные пользователи отклоняются до любых проверок
	if uc.accessRepo.IsRestricted(req.OwnerID) {
		uc.logger.Warn("BookRoom: restricted user=%d rejected", req.OwnerID)
		return nil, ErrUnauthorized
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookRoom: validation failed: %v", err)
		return nil, err
	}

	// 3. Дата не должна быть в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("BookRoom: date %s is in the past", req.Date)
		return nil, err
	}

	// 4. Вставка с проверкой пересечений
	created, err := uc.bookingRepo.Create(domain.Booking{
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		OwnerID:         req.OwnerID,
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotConflict) {
			uc.logger.Warn("BookRoom: slot %s %s conflicts with an existing booking",
				req.Date, req.StartTime)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("BookRoom: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	end, err := created.EndTime()
	if err != nil {
		uc.logger.Error("BookRoom: failed to compute end time: %v", err)
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	uc.logger.Info("BookRoom: booked %s %s-%s for user=%d",
		created.Date, created.StartTime, end, created.OwnerID)

	return &Response{
		Date:            created.Date.String(),
		StartTime:       created.StartTime.String(),
		EndTime:         end.String(),
		DurationMinutes: created.DurationMinutes,
		OwnerID:         created.OwnerID,
	}, nil
}
