package submit_draft

import (
	submitReservation "github.com/avdeev-lv/SM-ReservationService/internal/usecase/submit_reservation"
)

// SubmitResponse HTTP response model
type SubmitResponse struct {
	ReservationID int64   `json:"reservationId"`
	ListingID     int64   `json:"listingId"`
	BusinessName  string  `json:"businessName"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
}

// LoginRedirectResponse ответ для неавторизованного пользователя
type LoginRedirectResponse struct {
	Message  string `json:"message"`
	LoginURL string `json:"loginUrl"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitReservation.Response) *SubmitResponse {
	return &SubmitResponse{
		ReservationID: resp.ReservationID,
		ListingID:     resp.ListingID,
		BusinessName:  resp.BusinessName,
		Date:          resp.Date,
		Time:          resp.Time,
		TotalPrice:    resp.TotalPrice,
		Status:        resp.Status,
	}
}
