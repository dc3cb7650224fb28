package toggle_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForeignToggle      = "менять можно только свой график"
	msgOutOfWindow        = "дата вне окна на 10 дней вперёд"
	msgRestricted         = "доступ ограничен администратором"
)

// ToggleStatusRequest HTTP request model
type ToggleStatusRequest struct {
	Date string `json:"date"`
}

type Handler struct {
	service ScheduleService
	metrics *metrics.Metrics
	logger  Logger
}

// NewHandler создает обработчик переключения статуса.
// metrics может быть nil, если сбор метрик выключен.
func NewHandler(service ScheduleService, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		service: service,
		metrics: m,
		logger:  logger,
	}
}

// Handle POST /api/v1/users/{userId}/statuses/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.CallerID(r)

	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /users/{id}/statuses/toggle - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}
	if userID != callerID {
		h.logger.Warn("POST /users/{id}/statuses/toggle - user=%d tried to toggle user=%d",
			callerID, userID)
		handlers.RespondForbidden(w, msgForeignToggle)
		return
	}

	var req ToggleStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/{id}/statuses/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := domain.ParseDateKey(req.Date)
	if err != nil {
		h.logger.Warn("POST /users/{id}/statuses/toggle - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.service.ToggleStatus(userID, date)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrOutOfWindow):
			h.logger.Warn("POST /users/{id}/statuses/toggle - Out of window: user=%d date=%s",
				userID, req.Date)
			handlers.RespondBadRequest(w, msgOutOfWindow)

		case errors.Is(err, schedule.ErrUnauthorized):
			h.logger.Warn("POST /users/{id}/statuses/toggle - Restricted user: user=%d", callerID)
			handlers.RespondForbidden(w, msgRestricted)

		default:
			h.logger.Error("POST /users/{id}/statuses/toggle - Failed: user=%d error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.StatusToggles.Inc()
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
