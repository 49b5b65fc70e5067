package advance_step

import (
	"context"

	"github.com/avdeev-lv/SM-ReservationService/internal/service/wizard"
	"github.com/avdeev-lv/SM-ReservationService/internal/service/wizard/models"
)

type WizardService interface {
	Advance(ctx context.Context, draftID string, userID int64, direction wizard.Direction) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
