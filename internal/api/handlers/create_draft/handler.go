package create_draft

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdeev-lv/SM-ReservationService/internal/api/handlers"
	"github.com/avdeev-lv/SM-ReservationService/internal/api/middleware"
	"github.com/avdeev-lv/SM-ReservationService/internal/service/wizard"
)

const (
	msgInvalidListingID   = "некорректный ID заведения"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgListingNotFound    = "заведение не найдено"
	msgListingUnavailable = "не удалось загрузить данные заведения, попробуйте позже"
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

// Handle POST /api/v1/listings/{listingId}/draft
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.ParseInt(mux.Vars(r)["listingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /listings/{id}/draft - Invalid listing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidListingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /listings/{id}/draft - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.service.Start(r.Context(), userID, listingID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrListingNotFound):
			h.logger.Warn("POST /listings/{id}/draft - Listing not found: listing_id=%d", listingID)
			handlers.RespondNotFound(w, msgListingNotFound)

		case errors.Is(err, wizard.ErrListingUnavailable):
			h.logger.Error("POST /listings/{id}/draft - Listing service unavailable: listing_id=%d, error=%v", listingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgListingUnavailable)

		case errors.Is(err, wizard.ErrInvalidInput):
			h.logger.Warn("POST /listings/{id}/draft - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidListingID)

		default:
			h.logger.Error("POST /listings/{id}/draft - Failed to start wizard: listing_id=%d, error=%v", listingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /listings/{id}/draft - Draft created: draft_id=%s, user_id=%d, listing_id=%d",
		draft.DraftID, userID, listingID)
	handlers.RespondJSON(w, http.StatusCreated, draft)
}
