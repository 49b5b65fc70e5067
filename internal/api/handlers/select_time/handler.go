package select_time

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
	msgInvalidTimeFormat  = "некорректный формат времени, ожидается HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgDraftNotFound      = "черновик не найден"
	msgForbidden          = "доступ запрещен"
	msgDateRequired       = "сначала выберите дату"
	msgInvalidTimeSlot    = "время не входит в сетку слотов"
	msgSlotNotBookable    = "выбранный слот уже недоступен"
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

// Handle PUT /api/v1/drafts/{draftId}/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	var req SelectTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{id}/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := req.ParseTime()
	if err != nil {
		h.logger.Warn("PUT /drafts/{id}/time - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /drafts/{id}/time - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.service.SelectTime(r.Context(), draftID, userID, slot)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDraftNotFound):
			h.logger.Warn("PUT /drafts/{id}/time - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, wizard.ErrAccessDenied):
			h.logger.Warn("PUT /drafts/{id}/time - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, wizard.ErrIncompleteStep):
			h.logger.Warn("PUT /drafts/{id}/time - Date not selected: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgDateRequired)

		case errors.Is(err, wizard.ErrInvalidTimeSlot):
			h.logger.Warn("PUT /drafts/{id}/time - Time not on grid: draft_id=%s, time=%s", draftID, slot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, wizard.ErrSlotNotBookable):
			h.logger.Warn("PUT /drafts/{id}/time - Slot not bookable: draft_id=%s, time=%s", draftID, slot)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotBookable)

		default:
			h.logger.Error("PUT /drafts/{id}/time - Failed to select time: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draft)
}
