package select_provider

import (
	"context"

	"github.com/avdeev-lv/SM-ReservationService/internal/service/wizard/models"
)

type WizardService interface {
	SelectProvider(ctx context.Context, draftID string, userID, providerID int64) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
