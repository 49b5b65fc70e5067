package submit_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avdeev-lv/SM-ReservationService/internal/api/handlers"
	"github.com/avdeev-lv/SM-ReservationService/internal/api/middleware"
	submitReservation "github.com/avdeev-lv/SM-ReservationService/internal/usecase/submit_reservation"
)

const (
	msgMissingUserID    = "отсутствует ID пользователя"
	msgDraftNotFound    = "черновик не найден"
	msgForbidden        = "доступ запрещен"
	msgNotOnReviewStep  = "подтверждение доступно только с шага проверки"
	msgIncompleteDraft  = "в черновике не хватает обязательных данных"
	msgSlotNotBookable  = "выбранный слот уже недоступен, выберите другое время"
	msgLoginRequired    = "требуется вход в систему"
	msgCheckoutRejected = "сервис оплаты отклонил заказ"
)

type Handler struct {
	useCase SubmitReservationUseCase
	logger  Logger
}

func NewHandler(useCase SubmitReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/submit - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, redirect, err := h.useCase.Execute(r.Context(), &submitReservation.Request{
		DraftID: draftID,
		UserID:  userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitReservation.ErrUnauthenticated):
			// Черновик сохранен, клиенту отдается адрес страницы входа
			h.logger.Info("POST /drafts/{id}/submit - Login required: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondJSON(w, http.StatusUnauthorized, LoginRedirectResponse{
				Message:  msgLoginRequired,
				LoginURL: redirect.LoginURL,
			})

		case errors.Is(err, submitReservation.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/submit - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, submitReservation.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/submit - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, submitReservation.ErrNotOnReviewStep):
			h.logger.Warn("POST /drafts/{id}/submit - Not on review step: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgNotOnReviewStep)

		case errors.Is(err, submitReservation.ErrIncompleteDraft):
			h.logger.Warn("POST /drafts/{id}/submit - Incomplete draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgIncompleteDraft)

		case errors.Is(err, submitReservation.ErrSlotNotBookable):
			h.logger.Warn("POST /drafts/{id}/submit - Slot not bookable: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotBookable)

		case errors.Is(err, submitReservation.ErrCheckoutRejected):
			h.logger.Warn("POST /drafts/{id}/submit - Checkout rejected: draft_id=%s, error=%v", draftID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCheckoutRejected)

		default:
			h.logger.Error("POST /drafts/{id}/submit - Failed to submit: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/submit - Reservation created: draft_id=%s, reservation_id=%d, user_id=%d",
		draftID, result.ReservationID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
