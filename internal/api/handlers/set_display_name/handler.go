package set_display_name

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
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUserID      = "некорректный ID пользователя"
	msgForeignName        = "сменить можно только своё имя"
	msgEmptyName          = "имя не может быть пустым"
	msgNameTooLong        = "имя длиннее 50 символов"
	msgRestricted         = "доступ ограничен администратором"
)

// SetDisplayNameRequest HTTP request model
type SetDisplayNameRequest struct {
	Name string `json:"name"`
}

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

// Handle PUT /api/v1/users/{userId}/name
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.CallerID(r)

	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /users/{id}/name - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}
	if userID != callerID {
		h.logger.Warn("PUT /users/{id}/name - user=%d tried to rename user=%d", callerID, userID)
		handlers.RespondForbidden(w, msgForeignName)
		return
	}

	var req SetDisplayNameRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{id}/name - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetDisplayName(userID, req.Name); err != nil {
		switch {
		case errors.Is(err, schedule.ErrEmptyName):
			h.logger.Warn("PUT /users/{id}/name - Empty name: user=%d", userID)
			handlers.RespondBadRequest(w, msgEmptyName)

		case errors.Is(err, schedule.ErrNameTooLong):
			h.logger.Warn("PUT /users/{id}/name - Name too long: user=%d", userID)
			handlers.RespondBadRequest(w, msgNameTooLong)

		case errors.Is(err, schedule.ErrUnauthorized):
			h.logger.Warn("PUT /users/{id}/name - Restricted user: user=%d", callerID)
			handlers.RespondForbidden(w, msgRestricted)

		default:
			h.logger.Error("PUT /users/{id}/name - Failed: user=%d error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}
