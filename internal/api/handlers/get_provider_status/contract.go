package get_provider_status

import (
	"context"

	"github.com/avdeev-lv/SM-ReservationService/internal/service/status/models"
)

type StatusService interface {
	GetProviderStatus(ctx context.Context, listingID, providerID int64) (*models.StatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
