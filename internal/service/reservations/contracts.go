package reservations

import (
	"context"

	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
)

// ReservationRepository контракт репозитория бронирований
// Создание идет через отдельный use case подтверждения, поэтому здесь
// только операции чтения и отмены
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
