package converse

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/conversation"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUserID      = "некорректный ID пользователя"
	msgForeignDialog      = "диалог другого пользователя недоступен"
	msgInvalidKind        = "неизвестный вид вопроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNoPending          = "нет ожидающего вопроса"
	msgEmptyText          = "текст не может быть пустым"
	msgNameTooLong        = "имя длиннее 50 символов"
	msgRestricted         = "доступ ограничен администратором"
)

// PromptRequest HTTP request model: какой ответ ждать от пользователя
type PromptRequest struct {
	Kind string `json:"kind"`           // "name" или "comment"
	Date string `json:"date,omitempty"` // только для "comment"
}

// ReplyRequest HTTP request model: свободный текст пользователя
type ReplyRequest struct {
	Text string `json:"text"`
}

// ReplyResponse результат обработки ответа
type ReplyResponse struct {
	Kind string `json:"kind"`
	Date string `json:"date,omitempty"`
}

type Handler struct {
	manager ConversationManager
	service ScheduleService
	logger  Logger
}

func NewHandler(manager ConversationManager, service ScheduleService, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		service: service,
		logger:  logger,
	}
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	callerID := middleware.CallerID(r)

	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /users/{id}/%s - Invalid user ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return 0, false
	}
	if userID != callerID {
		h.logger.Warn("POST /users/{id}/%s - user=%d touched dialog of user=%d", op, callerID, userID)
		handlers.RespondForbidden(w, msgForeignDialog)
		return 0, false
	}
	return userID, true
}

// HandlePrompt POST /api/v1/users/{userId}/prompts
//
// Фронтенд сообщает, что показал пользователю вопрос, и следующий свободный
// текст нужно трактовать как ответ на него.
func (h *Handler) HandlePrompt(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "prompts")
	if !ok {
		return
	}

	var req PromptRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/{id}/prompts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	switch req.Kind {
	case "name":
		h.manager.ExpectName(userID)
	case "comment":
		date, err := domain.ParseDateKey(req.Date)
		if err != nil {
			h.logger.Warn("POST /users/{id}/prompts - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.manager.ExpectComment(userID, date)
	default:
		h.logger.Warn("POST /users/{id}/prompts - Unknown kind: %q", req.Kind)
		handlers.RespondBadRequest(w, msgInvalidKind)
		return
	}

	h.logger.Info("POST /users/{id}/prompts - user=%d awaiting %s", userID, req.Kind)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

// HandleReply POST /api/v1/users/{userId}/replies
//
// Свободный текст пользователя. Ожидание потребляется ровно один раз, даже
// если текст оказался некорректным: повторный вопрос задаёт фронтенд.
func (h *Handler) HandleReply(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "replies")
	if !ok {
		return
	}

	var req ReplyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/{id}/replies - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pending, ok := h.manager.Consume(userID)
	if !ok {
		h.logger.Warn("POST /users/{id}/replies - No pending prompt: user=%d", userID)
		handlers.RespondConflict(w, msgNoPending)
		return
	}

	var err error
	resp := ReplyResponse{Kind: string(pending.Kind)}
	switch pending.Kind {
	case conversation.KindAwaitingName:
		err = h.service.SetDisplayName(userID, req.Text)
	case conversation.KindAwaitingComment:
		resp.Date = pending.Date.String()
		err = h.service.AddComment(userID, pending.Date, req.Text)
	}

	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrEmptyName), errors.Is(err, schedule.ErrEmptyComment):
			h.logger.Warn("POST /users/{id}/replies - Empty text: user=%d", userID)
			handlers.RespondBadRequest(w, msgEmptyText)

		case errors.Is(err, schedule.ErrNameTooLong):
			h.logger.Warn("POST /users/{id}/replies - Name too long: user=%d", userID)
			handlers.RespondBadRequest(w, msgNameTooLong)

		case errors.Is(err, schedule.ErrUnauthorized):
			h.logger.Warn("POST /users/{id}/replies - Restricted user: user=%d", userID)
			handlers.RespondForbidden(w, msgRestricted)

		default:
			h.logger.Error("POST /users/{id}/replies - Failed: user=%d error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
