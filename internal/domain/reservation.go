package domain

import (
	"time"

	"github.com/avdeev-lv/SM-ReservationService/pkg/types"
)

// ReservationStatus статус оформленного бронирования
type ReservationStatus string

const (
	StatusPendingPayment  ReservationStatus = "pending_payment"
	StatusConfirmed       ReservationStatus = "confirmed"
	StatusCancelledByUser ReservationStatus = "cancelled_by_user"
)

// ReservationService одна услуга в составе бронирования
// Денормализована для истории: название и цена на момент бронирования
type ReservationService struct {
	ServiceID   int64
	ServiceName string
	Price       float64
}

// Reservation оформленное бронирование
// Записывается при отправке черновика, перед передачей в checkout
type Reservation struct {
	ID           int64
	UserID       int64
	ListingID    int64
	BusinessName string

	Services     []ReservationService
	ProviderID   int64
	ProviderName string

	Date       time.Time
	StartTime  types.TimeString
	Note       *string
	TotalPrice float64

	Status ReservationStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true для бронирований в активном статусе
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelledByUser
}

// CanBeCancelled возвращает true, если бронирование еще можно отменить
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPendingPayment || r.Status == StatusConfirmed
}

// IsCancelled возвращает true для отмененных бронирований
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelledByUser
}
