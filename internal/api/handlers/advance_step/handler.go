package advance_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avdeev-lv/SM-ReservationService/internal/api/handlers"
	"github.com/avdeev-lv/SM-ReservationService/internal/api/middleware"
	"github.com/avdeev-lv/SM-ReservationService/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgDraftNotFound      = "черновик не найден"
	msgForbidden          = "доступ запрещен"
	msgIncompleteStep     = "заполните обязательные поля текущего шага"
	msgInvalidTransition  = "переход недоступен"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/step
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	var req AdvanceStepRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drafts/{id}/step - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/step - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.service.Advance(r.Context(), draftID, userID, wizard.Direction(req.Direction))
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/step - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, wizard.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/step - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, wizard.ErrIncompleteStep):
			h.logger.Warn("POST /drafts/{id}/step - Step incomplete: draft_id=%s, error=%v", draftID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgIncompleteStep)

		case errors.Is(err, wizard.ErrInvalidTransition), errors.Is(err, wizard.ErrInvalidInput):
			h.logger.Warn("POST /drafts/{id}/step - Invalid transition: draft_id=%s, direction=%s", draftID, req.Direction)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /drafts/{id}/step - Failed to advance: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draft)
}
