package manage_access

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTarget      = "некорректный ID пользователя"
	msgForbidden          = "операция доступна только администраторам"
	msgSelfDemote         = "нельзя снять права с самого себя"
	msgAlreadyAdmin       = "пользователь уже администратор"
	msgNotAdmin           = "пользователь не является администратором"
	msgNotRestricted      = "пользователь не заблокирован"
)

// AccessRequest HTTP request model для всех операций управления доступом
type AccessRequest struct {
	TargetID int64 `json:"targetId"`
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

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, op string) (actingID, targetID int64, ok bool) {
	actingID = middleware.CallerID(r)

	var req AccessRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /access/%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return 0, 0, false
	}
	if req.TargetID <= 0 {
		h.logger.Warn("POST /access/%s - Invalid target: %d", op, req.TargetID)
		handlers.RespondBadRequest(w, msgInvalidTarget)
		return 0, 0, false
	}
	return actingID, req.TargetID, true
}

// HandleRestrict POST /api/v1/access/restrict
func (h *Handler) HandleRestrict(w http.ResponseWriter, r *http.Request) {
	actingID, targetID, ok := h.decode(w, r, "restrict")
	if !ok {
		return
	}

	if err := h.service.Restrict(actingID, targetID); err != nil {
		if errors.Is(err, schedule.ErrUnauthorized) {
			h.logger.Warn("POST /access/restrict - Forbidden: user=%d", actingID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("POST /access/restrict - Failed: admin=%d target=%d error=%v",
			actingID, targetID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}

// HandleUnrestrict POST /api/v1/access/unrestrict
func (h *Handler) HandleUnrestrict(w http.ResponseWriter, r *http.Request) {
	actingID, targetID, ok := h.decode(w, r, "unrestrict")
	if !ok {
		return
	}

	if err := h.service.Unrestrict(actingID, targetID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrUnauthorized):
			h.logger.Warn("POST /access/unrestrict - Forbidden: user=%d", actingID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrNotRestricted):
			h.logger.Warn("POST /access/unrestrict - Not restricted: target=%d", targetID)
			handlers.RespondBadRequest(w, msgNotRestricted)

		default:
			h.logger.Error("POST /access/unrestrict - Failed: admin=%d target=%d error=%v",
				actingID, targetID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}

// HandlePromote POST /api/v1/access/promote
func (h *Handler) HandlePromote(w http.ResponseWriter, r *http.Request) {
	actingID, targetID, ok := h.decode(w, r, "promote")
	if !ok {
		return
	}

	if err := h.service.Promote(actingID, targetID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrUnauthorized):
			h.logger.Warn("POST /access/promote - Forbidden: user=%d", actingID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrAlreadyAdmin):
			h.logger.Warn("POST /access/promote - Already admin: target=%d", targetID)
			handlers.RespondBadRequest(w, msgAlreadyAdmin)

		default:
			h.logger.Error("POST /access/promote - Failed: admin=%d target=%d error=%v",
				actingID, targetID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}

// HandleDemote POST /api/v1/access/demote
func (h *Handler) HandleDemote(w http.ResponseWriter, r *http.Request) {
	actingID, targetID, ok := h.decode(w, r, "demote")
	if !ok {
		return
	}

	if err := h.service.Demote(actingID, targetID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrUnauthorized):
			h.logger.Warn("POST /access/demote - Forbidden: user=%d", actingID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrSelfDemote):
			h.logger.Warn("POST /access/demote - Self demote: admin=%d", actingID)
			handlers.RespondBadRequest(w, msgSelfDemote)

		case errors.Is(err, schedule.ErrNotAdminTarget):
			h.logger.Warn("POST /access/demote - Not an admin: target=%d", targetID)
			handlers.RespondBadRequest(w, msgNotAdmin)

		default:
			h.logger.Error("POST /access/demote - Failed: admin=%d target=%d error=%v",
				actingID, targetID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}
