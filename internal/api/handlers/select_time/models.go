package select_time

import (
	"github.com/avdeev-lv/SM-ReservationService/pkg/types"
)

// SelectTimeRequest HTTP request model
// Время принимается в 24-часовом или 12-часовом формате ("14:00", "2:00 pm")
type SelectTimeRequest struct {
	Time string `json:"time"`
}

// ParseTime нормализует время из запроса
func (r *SelectTimeRequest) ParseTime() (types.TimeString, error) {
	return types.NewTimeStringFromString(r.Time)
}
