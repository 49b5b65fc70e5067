package select_date

import (
	"context"
	"time"

	"github.com/avdeev-lv/SM-ReservationService/internal/service/wizard/models"
)

type WizardService interface {
	SelectDate(ctx context.Context, draftID string, userID int64, date time.Time) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
