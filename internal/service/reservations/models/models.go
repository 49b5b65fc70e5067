package models

import (
	"time"

	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
)

// ReservationService услуга в составе бронирования
type ReservationService struct {
	ServiceID   int64   `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
}

// ReservationResponse бронирование в ответе API
type ReservationResponse struct {
	ID                 int64                `json:"id"`
	ListingID          int64                `json:"listing_id"`
	BusinessName       string               `json:"business_name"`
	Services           []ReservationService `json:"services"`
	ProviderID         int64                `json:"provider_id"`
	ProviderName       string               `json:"provider_name"`
	Date               string               `json:"date"`
	StartTime          string               `json:"start_time"`
	Note               *string              `json:"note,omitempty"`
	TotalPrice         float64              `json:"total_price"`
	Status             string               `json:"status"`
	CancellationReason *string              `json:"cancellation_reason,omitempty"`
	CanBeCancelled     bool                 `json:"can_be_cancelled"`
	CreatedAt          string               `json:"created_at"`
}

// FromDomainReservation конвертирует доменную модель в ответ API
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	services := make([]ReservationService, len(r.Services))
	for i, svc := range r.Services {
		services[i] = ReservationService{
			ServiceID:   svc.ServiceID,
			ServiceName: svc.ServiceName,
			Price:       svc.Price,
		}
	}

	return &ReservationResponse{
		ID:                 r.ID,
		ListingID:          r.ListingID,
		BusinessName:       r.BusinessName,
		Services:           services,
		ProviderID:         r.ProviderID,
		ProviderName:       r.ProviderName,
		Date:               r.Date.Format(domain.DateFormat),
		StartTime:          r.StartTime.String(),
		Note:               r.Note,
		TotalPrice:         r.TotalPrice,
		Status:             string(r.Status),
		CancellationReason: r.CancellationReason,
		CanBeCancelled:     r.CanBeCancelled(),
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservations конвертирует список бронирований
func FromDomainReservations(items []*domain.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, len(items))
	for i, item := range items {
		result[i] = *FromDomainReservation(item)
	}
	return result
}
