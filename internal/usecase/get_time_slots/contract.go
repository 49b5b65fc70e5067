package get_time_slots

import (
	"context"
	"time"

	"github.com/avdeev-lv/SM-ReservationService/internal/integrations/listingservice"
)

// ListingServiceClient интерфейс клиента сервиса листингов
type ListingServiceClient interface {
	GetListing(ctx context.Context, listingID int64) (*listingservice.Listing, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
