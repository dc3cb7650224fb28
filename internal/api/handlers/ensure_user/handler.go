package ensure_user

import (
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

// EnsureUserRequest HTTP request model.
// DisplayName - имя, которое сообщила платформа при первом контакте.
type EnsureUserRequest struct {
	DisplayName string `json:"displayName"`
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

// Handle POST /api/v1/users/ensure
//
// Регистрация при первом контакте. Доступна и заблокированным пользователям:
// фронтенду нужен профиль, чтобы показать уведомление об отказе в доступе.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.CallerID(r)

	var req EnsureUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/ensure - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp := h.service.EnsureUser(callerID, req.DisplayName)
	h.logger.Info("POST /users/ensure - user=%d name=%q", callerID, resp.DisplayName)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
