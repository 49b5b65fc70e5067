package get_time_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/avdeev-lv/SM-ReservationService/internal/api/handlers"
	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
	getTimeSlots "github.com/avdeev-lv/SM-ReservationService/internal/usecase/get_time_slots"
)

const (
	msgInvalidListingID   = "некорректный ID заведения"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast         = "дата не может быть в прошлом"
	msgListingNotFound    = "заведение не найдено"
	msgListingUnavailable = "не удалось загрузить данные заведения, попробуйте позже"
)

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/listings/{listingId}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.ParseInt(mux.Vars(r)["listingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /listings/{id}/slots - Invalid listing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidListingID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /listings/{id}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getTimeSlots.Request{
		ListingID: listingID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrInvalidDate):
			h.logger.Warn("GET /listings/{id}/slots - Date in past: listing_id=%d", listingID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getTimeSlots.ErrInvalidInput):
			h.logger.Warn("GET /listings/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidListingID)

		case errors.Is(err, getTimeSlots.ErrListingNotFound):
			h.logger.Warn("GET /listings/{id}/slots - Listing not found: listing_id=%d", listingID)
			handlers.RespondNotFound(w, msgListingNotFound)

		case errors.Is(err, getTimeSlots.ErrListingUnavailable):
			h.logger.Error("GET /listings/{id}/slots - Listing service unavailable: listing_id=%d, error=%v", listingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgListingUnavailable)

		default:
			h.logger.Error("GET /listings/{id}/slots - Failed to get slots: listing_id=%d, error=%v", listingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
