package select_date

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
	msgInvalidDateFormat  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgDraftNotFound      = "черновик не найден"
	msgForbidden          = "доступ запрещен"
	msgDateInPast         = "дата не может быть в прошлом"
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

// Handle PUT /api/v1/drafts/{draftId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		h.logger.Warn("PUT /drafts/{id}/date - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /drafts/{id}/date - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.service.SelectDate(r.Context(), draftID, userID, date)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDraftNotFound):
			h.logger.Warn("PUT /drafts/{id}/date - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, wizard.ErrAccessDenied):
			h.logger.Warn("PUT /drafts/{id}/date - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, wizard.ErrInvalidDate):
			h.logger.Warn("PUT /drafts/{id}/date - Date in past: draft_id=%s, date=%s", draftID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		default:
			h.logger.Error("PUT /drafts/{id}/date - Failed to select date: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draft)
}
