package submit_reservation

import (
	"fmt"
	"time"

	"github.com/avdeev-lv/SM-ReservationService/internal/availability"
	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DraftID == "" {
		return fmt.Errorf("%w: draftID is required", ErrDraftNotFound)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrAccessDenied)
	}
	return nil
}

// validateDraftComplete проверяет, что черновик на последнем шаге и все
// обязательные поля заполнены
// Проверки повторяют шаговые условия: клиент не должен уметь обойти их
// прямым вызовом подтверждения
func validateDraftComplete(draft *domain.ReservationDraft) error {
	if !draft.Step.IsLast() {
		return fmt.Errorf("%w: current step is %s", ErrNotOnReviewStep, draft.Step)
	}

	if field := draft.MissingFieldForSubmit(); field != "" {
		return fmt.Errorf("%w: %s is required", ErrIncompleteDraft, field)
	}

	if len(draft.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", ErrIncompleteDraft, domain.MaxNoteLength)
	}

	return nil
}

// validateSlotStillBookable перепроверяет буфер на момент подтверждения:
// слот мог протухнуть, пока пользователь заполнял мастер
func validateSlotStillBookable(draft *domain.ReservationDraft, now time.Time) error {
	bookable, err := availability.IsSlotBookable(draft.Time, *draft.Date, now)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !bookable {
		return fmt.Errorf("%w: %s on %s", ErrSlotNotBookable, draft.Time, draft.Date.Format(domain.DateFormat))
	}
	return nil
}
