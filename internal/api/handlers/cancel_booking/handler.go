package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound           = "бронь не найдена"
	msgNotOwner           = "отменить бронь может только её владелец"
	msgRestricted         = "доступ ограничен администратором"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}

type Handler struct {
	service ScheduleService
	metrics *metrics.Metrics
	logger  Logger
}

// NewHandler создает обработчик отмены брони.
// metrics может быть nil, если сбор метрик выключен.
func NewHandler(service ScheduleService, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		service: service,
		metrics: m,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.CallerID(r)

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := domain.ParseDateKey(req.Date)
	if err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}
	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	if err := h.service.Cancel(date, start, callerID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/cancel - Not found: date=%s start=%s", req.Date, req.StartTime)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrNotOwner):
			h.logger.Warn("POST /bookings/cancel - Not owner: user=%d date=%s start=%s",
				callerID, req.Date, req.StartTime)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, schedule.ErrUnauthorized):
			h.logger.Warn("POST /bookings/cancel - Restricted user: user=%d", callerID)
			handlers.RespondForbidden(w, msgRestricted)

		default:
			h.logger.Error("POST /bookings/cancel - Failed: user=%d error=%v", callerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.BookingsCancelled.Inc()
	}
	h.logger.Info("POST /bookings/cancel - Cancelled: user=%d date=%s start=%s",
		callerID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
