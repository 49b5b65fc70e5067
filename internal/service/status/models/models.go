package models

import "github.com/avdeev-lv/SM-ReservationService/internal/domain"

// StatusResponse бейдж доступности в ответе API
type StatusResponse struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// FromDomainStatus конвертирует доменный статус в ответ API
func FromDomainStatus(s domain.AvailabilityStatus) *StatusResponse {
	return &StatusResponse{
		Message:  s.Message,
		Severity: string(s.Severity),
	}
}
