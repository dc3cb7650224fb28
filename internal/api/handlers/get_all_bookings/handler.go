package get_all_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
)

const (
	msgRestricted = "доступ ограничен администратором"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.CallerID(r)

	resp, err := h.service.ListAll(callerID)
	if err != nil {
		if errors.Is(err, schedule.ErrUnauthorized) {
			h.logger.Warn("GET /bookings - Restricted user: user=%d", callerID)
			handlers.RespondForbidden(w, msgRestricted)
			return
		}
		h.logger.Error("GET /bookings - Failed: user=%d error=%v", callerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
