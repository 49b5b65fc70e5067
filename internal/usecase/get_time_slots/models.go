package get_time_slots

import (
	"time"

	"github.com/avdeev-lv/SM-ReservationService/pkg/types"
)

// Request модель запроса списка слотов
type Request struct {
	ListingID int64     // ID листинга
	Date      time.Time // Дата, на которую запрашиваются слоты
}

// Slot один слот почасовой сетки
type Slot struct {
	Time     types.TimeString // Время начала слота
	Bookable bool             // Доступен ли слот с учетом буфера
}

// Response модель ответа со слотами на дату
type Response struct {
	Date  time.Time // Дата запроса
	Slots []Slot    // Полная сетка слотов
}
