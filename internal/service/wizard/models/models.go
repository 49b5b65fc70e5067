package models

import (
	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
)

// SelectedService выбранная услуга в ответе мастера
type SelectedService struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// SelectedProvider выбранный мастер в ответе мастера
type SelectedProvider struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}

// DraftResponse текущее состояние черновика
// Возвращается каждой операцией мастера, чтобы клиент всегда видел
// актуальный шаг, выбор и пересчитанную сумму
type DraftResponse struct {
	DraftID      string `json:"draftId"`
	ListingID    int64  `json:"listingId"`
	BusinessName string `json:"businessName"`

	Step     int    `json:"step"`
	StepName string `json:"stepName"`

	SelectedServices []SelectedService `json:"selectedServices"`
	SelectedProvider *SelectedProvider `json:"selectedProvider,omitempty"`
	Date             *string           `json:"date,omitempty"` // "2026-08-31"
	Time             string            `json:"time,omitempty"` // "14:00"
	Note             string            `json:"note,omitempty"`

	TotalPrice float64 `json:"totalPrice"`

	// Подсказки клиенту о доступных переходах
	CanGoBack    bool   `json:"canGoBack"`
	MissingField string `json:"missingField,omitempty"` // что блокирует переход дальше
}

// FromDomainDraft конвертирует domain модель черновика в DTO
func FromDomainDraft(d *domain.ReservationDraft) *DraftResponse {
	resp := &DraftResponse{
		DraftID:      d.ID,
		ListingID:    d.ListingID,
		BusinessName: d.BusinessName,
		Step:         int(d.Step),
		StepName:     d.Step.String(),
		Note:         d.Note,
		Time:         d.Time.String(),
		TotalPrice:   d.TotalPrice(),
		CanGoBack:    !d.Step.IsFirst(),
		MissingField: d.MissingFieldForStep(d.Step),
	}

	resp.SelectedServices = make([]SelectedService, len(d.SelectedServices))
	for i, s := range d.SelectedServices {
		resp.SelectedServices[i] = SelectedService{ID: s.ID, Name: s.Name, Price: s.Price}
	}

	if d.SelectedProvider != nil {
		resp.SelectedProvider = &SelectedProvider{
			ID:       d.SelectedProvider.ID,
			FullName: d.SelectedProvider.FullName,
		}
	}

	if d.Date != nil {
		dateStr := d.Date.Format(domain.DateFormat)
		resp.Date = &dateStr
	}

	return resp
}
