package get_draft

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

// Handle GET /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /drafts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.service.Get(r.Context(), draftID, userID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDraftNotFound):
			h.logger.Warn("GET /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, wizard.ErrAccessDenied):
			h.logger.Warn("GET /drafts/{id} - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /drafts/{id} - Failed to get draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draft)
}
