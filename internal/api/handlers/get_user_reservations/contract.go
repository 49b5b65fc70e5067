package get_user_reservations

import (
	"context"

	"github.com/avdeev-lv/SM-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	GetUserReservations(ctx context.Context, userID int64, statusFilter *string) ([]models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
