package submit_draft

import (
	"context"

	submitReservation "github.com/avdeev-lv/SM-ReservationService/internal/usecase/submit_reservation"
)

type SubmitReservationUseCase interface {
	Execute(ctx context.Context, req *submitReservation.Request) (*submitReservation.Response, *submitReservation.LoginRedirect, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
