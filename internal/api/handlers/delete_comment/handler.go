package delete_comment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
)

const (
	msgInvalidUserID  = "некорректный ID пользователя"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForeignComment = "удалить можно только свою заметку"
	msgNotFound       = "заметка не найдена"
	msgRestricted     = "доступ ограничен администратором"
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

// Handle DELETE /api/v1/users/{userId}/comments/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.CallerID(r)
	vars := mux.Vars(r)

	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /users/{id}/comments/{date} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}
	if userID != callerID {
		h.logger.Warn("DELETE /users/{id}/comments/{date} - user=%d tried to delete comment of user=%d",
			callerID, userID)
		handlers.RespondForbidden(w, msgForeignComment)
		return
	}

	date, err := domain.ParseDateKey(vars["date"])
	if err != nil {
		h.logger.Warn("DELETE /users/{id}/comments/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.DeleteComment(userID, date); err != nil {
		switch {
		case errors.Is(err, schedule.ErrCommentNotFound):
			h.logger.Warn("DELETE /users/{id}/comments/{date} - Not found: user=%d date=%s",
				userID, vars["date"])
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrUnauthorized):
			h.logger.Warn("DELETE /users/{id}/comments/{date} - Restricted user: user=%d", callerID)
			handlers.RespondForbidden(w, msgRestricted)

		default:
			h.logger.Error("DELETE /users/{id}/comments/{date} - Failed: user=%d error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}
