package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgForeignList   = "просмотр чужих броней недоступен"
	msgRestricted    = "доступ ограничен администратором"
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

// Handle GET /api/v1/users/{userId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.CallerID(r)

	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/bookings - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Список своих броней: чужие видны только через сводный список
	if userID != callerID {
		h.logger.Warn("GET /users/{id}/bookings - user=%d requested bookings of user=%d",
			callerID, userID)
		handlers.RespondForbidden(w, msgForeignList)
		return
	}

	resp, err := h.service.ListMine(userID)
	if err != nil {
		if errors.Is(err, schedule.ErrUnauthorized) {
			h.logger.Warn("GET /users/{id}/bookings - Restricted user: user=%d", callerID)
			handlers.RespondForbidden(w, msgRestricted)
			return
		}
		h.logger.Error("GET /users/{id}/bookings - Failed: user=%d error=%v", callerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
