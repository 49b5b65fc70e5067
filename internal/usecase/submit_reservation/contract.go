package submit_reservation

import (
	"context"
	"time"

	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
	"github.com/avdeev-lv/SM-ReservationService/internal/infra/draftstore"
	"github.com/avdeev-lv/SM-ReservationService/internal/integrations/checkoutservice"
)

// DraftStore интерфейс хранилища черновиков
type DraftStore interface {
	Get(id string) (*draftstore.Session, error)
	Delete(id string)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// AuthServiceClient интерфейс клиента сервиса авторизации
type AuthServiceClient interface {
	IsAuthenticated(ctx context.Context, userID int64) (bool, error)
	LoginURL() string
}

// CheckoutServiceClient интерфейс клиента сервиса оплаты
type CheckoutServiceClient interface {
	StartCheckout(ctx context.Context, payload *checkoutservice.Payload) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
