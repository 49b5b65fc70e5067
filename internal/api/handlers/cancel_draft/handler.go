package cancel_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avdeev-lv/SM-ReservationService/internal/api/handlers"
	"github.com/avdeev-lv/SM-ReservationService/internal/api/middleware"
	"github.com/avdeev-lv/SM-ReservationService/internal/service/wizard"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "черновик не найден"
	msgForbidden     = "доступ запрещен"
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

// Handle DELETE /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /drafts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Cancel(r.Context(), draftID, userID); err != nil {
		switch {
		case errors.Is(err, wizard.ErrDraftNotFound):
			h.logger.Warn("DELETE /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, wizard.ErrAccessDenied):
			h.logger.Warn("DELETE /drafts/{id} - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /drafts/{id} - Failed to cancel draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /drafts/{id} - Draft discarded: draft_id=%s, user_id=%d", draftID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
