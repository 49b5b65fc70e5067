package status

import (
	"context"

	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
	listingClient "github.com/avdeev-lv/SM-ReservationService/internal/integrations/listingservice"
)

// ListingServiceClient контракт клиента сервиса листингов
type ListingServiceClient interface {
	GetListing(ctx context.Context, listingID int64) (*listingClient.Listing, error)
}

// StatusResolver контракт общего вычислителя статусов доступности
type StatusResolver interface {
	Resolve(key string, schedule domain.WeekSchedule) (domain.AvailabilityStatus, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
