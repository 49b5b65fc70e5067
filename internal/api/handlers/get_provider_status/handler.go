package get_provider_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdeev-lv/SM-ReservationService/internal/api/handlers"
	"github.com/avdeev-lv/SM-ReservationService/internal/service/status"
)

const (
	msgInvalidListingID   = "некорректный ID заведения"
	msgInvalidProviderID  = "некорректный ID мастера"
	msgListingNotFound    = "заведение не найдено"
	msgProviderNotFound   = "мастер не найден"
	msgListingUnavailable = "не удалось загрузить данные заведения, попробуйте позже"
)

type Handler struct {
	service StatusService
	logger  Logger
}

func NewHandler(service StatusService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/listings/{listingId}/providers/{providerId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	listingID, err := strconv.ParseInt(vars["listingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /listings/{id}/providers/{pid}/status - Invalid listing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidListingID)
		return
	}

	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /listings/{id}/providers/{pid}/status - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	result, err := h.service.GetProviderStatus(r.Context(), listingID, providerID)
	if err != nil {
		switch {
		case errors.Is(err, status.ErrListingNotFound):
			h.logger.Warn("GET /listings/{id}/providers/{pid}/status - Listing not found: listing_id=%d", listingID)
			handlers.RespondNotFound(w, msgListingNotFound)

		case errors.Is(err, status.ErrProviderNotFound):
			h.logger.Warn("GET /listings/{id}/providers/{pid}/status - Provider not found: listing_id=%d, provider_id=%d",
				listingID, providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, status.ErrListingUnavailable):
			h.logger.Error("GET /listings/{id}/providers/{pid}/status - Listing service unavailable: listing_id=%d, error=%v",
				listingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgListingUnavailable)

		default:
			h.logger.Error("GET /listings/{id}/providers/{pid}/status - Failed to get status: listing_id=%d, error=%v",
				listingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
