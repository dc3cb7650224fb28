package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	bookRoom "github.com/m04kA/SMC-ScheduleService/internal/usecase/book_room"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgSlotNotAvailable   = "слот пересекается с существующей бронью"
	msgRestricted         = "доступ ограничен администратором"
	msgInvalidDuration    = "недопустимая длительность, разрешены 30, 60 и 90 минут"
	msgDateInPast         = "дата бронирования уже прошла"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase BookRoomUseCase
	metrics *metrics.Metrics
	logger  Logger
}

// NewHandler создает обработчик бронирования.
// metrics может быть nil, если сбор метрик выключен.
func NewHandler(useCase BookRoomUseCase, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: m,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.CallerID(r)

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(callerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookRoom.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user=%d date=%s start=%s",
				callerID, req.Date, req.StartTime)
			if h.metrics != nil {
				h.metrics.BookingConflicts.Inc()
			}
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, bookRoom.ErrUnauthorized):
			h.logger.Warn("POST /bookings - Restricted user: user=%d", callerID)
			handlers.RespondForbidden(w, msgRestricted)

		case errors.Is(err, bookRoom.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: user=%d duration=%d",
				callerID, req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, bookRoom.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in past: user=%d date=%s", callerID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, bookRoom.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user=%d: %v", callerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%d error=%v", callerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.BookingsCreated.Inc()
	}
	h.logger.Info("POST /bookings - Booking created: user=%d date=%s start=%s",
		callerID, result.Date, result.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
