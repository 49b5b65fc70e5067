package select_time

import (
	"context"

	"github.com/avdeev-lv/SM-ReservationService/internal/service/wizard/models"
	"github.com/avdeev-lv/SM-ReservationService/pkg/types"
)

type WizardService interface {
	SelectTime(ctx context.Context, draftID string, userID int64, slot types.TimeString) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
