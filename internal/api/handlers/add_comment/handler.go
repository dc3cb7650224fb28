package add_comment

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
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForeignComment     = "заметку можно оставить только себе"
	msgEmptyComment       = "текст заметки пуст"
	msgRestricted         = "доступ ограничен администратором"
)

// AddCommentRequest HTTP request model
type AddCommentRequest struct {
	Text string `json:"text"`
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

// Handle PUT /api/v1/users/{userId}/comments/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.CallerID(r)
	vars := mux.Vars(r)

	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /users/{id}/comments/{date} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}
	if userID != callerID {
		h.logger.Warn("PUT /users/{id}/comments/{date} - user=%d tried to comment for user=%d",
			callerID, userID)
		handlers.RespondForbidden(w, msgForeignComment)
		return
	}

	date, err := domain.ParseDateKey(vars["date"])
	if err != nil {
		h.logger.Warn("PUT /users/{id}/comments/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req AddCommentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{id}/comments/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.AddComment(userID, date, req.Text); err != nil {
		switch {
		case errors.Is(err, schedule.ErrEmptyComment):
			h.logger.Warn("PUT /users/{id}/comments/{date} - Empty text: user=%d", userID)
			handlers.RespondBadRequest(w, msgEmptyComment)

		case errors.Is(err, schedule.ErrUnauthorized):
			h.logger.Warn("PUT /users/{id}/comments/{date} - Restricted user: user=%d", callerID)
			handlers.RespondForbidden(w, msgRestricted)

		default:
			h.logger.Error("PUT /users/{id}/comments/{date} - Failed: user=%d error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}
