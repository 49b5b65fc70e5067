package get_user_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdeev-lv/SM-ReservationService/internal/api/handlers"
	"github.com/avdeev-lv/SM-ReservationService/internal/api/middleware"
	"github.com/avdeev-lv/SM-ReservationService/internal/service/reservations"
	"github.com/avdeev-lv/SM-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgInvalidStatus = "некорректный статус в фильтре"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ReservationsListResponse HTTP response model
type ReservationsListResponse struct {
	Reservations []models.ReservationResponse `json:"reservations"`
}

// Handle GET /api/v1/users/{userId}/reservations?status=confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	pathUserID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/reservations - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Смотреть чужую историю нельзя
	if pathUserID != userID {
		h.logger.Warn("GET /users/{id}/reservations - Access denied: path_user_id=%d, user_id=%d", pathUserID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var statusFilter *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		statusFilter = &raw
	}

	items, err := h.service.GetUserReservations(r.Context(), userID, statusFilter)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidStatus):
			h.logger.Warn("GET /users/{id}/reservations - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{id}/reservations - Failed to get reservations: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ReservationsListResponse{Reservations: items})
}
