package get_time_slots

import (
	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
	getTimeSlots "github.com/avdeev-lv/SM-ReservationService/internal/usecase/get_time_slots"
)

// SlotResponse один слот в ответе API
type SlotResponse struct {
	Time     string `json:"time"`
	Bookable bool   `json:"bookable"`
}

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) *TimeSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Time:     slot.Time.String(),
			Bookable: slot.Bookable,
		}
	}

	return &TimeSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
