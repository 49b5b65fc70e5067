package get_listing_status

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
	msgListingNotFound    = "заведение не найдено"
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

// Handle GET /api/v1/listings/{listingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.ParseInt(mux.Vars(r)["listingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /listings/{id}/status - Invalid listing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidListingID)
		return
	}

	result, err := h.service.GetListingStatus(r.Context(), listingID)
	if err != nil {
		switch {
		case errors.Is(err, status.ErrListingNotFound):
			h.logger.Warn("GET /listings/{id}/status - Listing not found: listing_id=%d", listingID)
			handlers.RespondNotFound(w, msgListingNotFound)

		case errors.Is(err, status.ErrListingUnavailable):
			h.logger.Error("GET /listings/{id}/status - Listing service unavailable: listing_id=%d, error=%v", listingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgListingUnavailable)

		default:
			h.logger.Error("GET /listings/{id}/status - Failed to get status: listing_id=%d, error=%v", listingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
