package get_draft

import (
	"context"

	"github.com/avdeev-lv/SM-ReservationService/internal/service/wizard/models"
)

type WizardService interface {
	Get(ctx context.Context, draftID string, userID int64) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
