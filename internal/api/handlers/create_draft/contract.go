package create_draft

import (
	"context"

	"github.com/avdeev-lv/SM-ReservationService/internal/service/wizard/models"
)

type WizardService interface {
	Start(ctx context.Context, userID, listingID int64) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
