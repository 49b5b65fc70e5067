package select_provider

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
	msgProviderNotFound   = "мастер не найден в заведении"
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

// Handle PUT /api/v1/drafts/{draftId}/provider
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	var req SelectProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{id}/provider - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /drafts/{id}/provider - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.service.SelectProvider(r.Context(), draftID, userID, req.ProviderID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDraftNotFound):
			h.logger.Warn("PUT /drafts/{id}/provider - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, wizard.ErrAccessDenied):
			h.logger.Warn("PUT /drafts/{id}/provider - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, wizard.ErrProviderNotFound):
			h.logger.Warn("PUT /drafts/{id}/provider - Provider not found: draft_id=%s, provider_id=%d", draftID, req.ProviderID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		default:
			h.logger.Error("PUT /drafts/{id}/provider - Failed to select provider: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draft)
}
