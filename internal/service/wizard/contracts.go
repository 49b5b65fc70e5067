package wizard

import (
	"context"
	"time"

	"github.com/avdeev-lv/SM-ReservationService/internal/infra/draftstore"
	"github.com/avdeev-lv/SM-ReservationService/internal/integrations/listingservice"
)

// ListingServiceClient интерфейс клиента для ListingService
type ListingServiceClient interface {
	GetListing(ctx context.Context, listingID int64) (*listingservice.Listing, error)
}

// DraftStore интерфейс хранилища сессий мастера
type DraftStore interface {
	Put(session *draftstore.Session)
	Get(id string) (*draftstore.Session, error)
	Delete(id string)
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
