package listingservice

import (
	"time"

	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
	"github.com/avdeev-lv/SM-ReservationService/pkg/types"
)

// Listing данные листинга из ListingService
type Listing struct {
	ID           int64       `json:"id"`
	BusinessName string      `json:"businessName"`
	Services     []Service   `json:"services"`
	Employees    []Employee  `json:"employees"`
	StoreHours   []DayHours  `json:"storeHours"`
}

// Service услуга из каталога листинга
type Service struct {
	ID          int64   `json:"id"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
}

// Employee сотрудник (мастер) листинга
type Employee struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}

// DayHours расписание работы на один день недели
// DayOfWeek: 0 = воскресенье ... 6 = суббота
// Время приходит как wall-clock строка: "09:00" или "9:00 am"
type DayHours struct {
	DayOfWeek int    `json:"dayOfWeek"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	IsClosed  bool   `json:"isClosed"`
}

// FindService ищет услугу по ID
func (l *Listing) FindService(serviceID int64) *Service {
	for i := range l.Services {
		if l.Services[i].ID == serviceID {
			return &l.Services[i]
		}
	}
	return nil
}

// FindEmployee ищет сотрудника по ID
func (l *Listing) FindEmployee(employeeID int64) *Employee {
	for i := range l.Employees {
		if l.Employees[i].ID == employeeID {
			return &l.Employees[i]
		}
	}
	return nil
}

// WeekSchedule конвертирует расписание листинга в доменную модель
// Время нормализуется здесь же: дальше по коду ходят только "HH:MM"
func (l *Listing) WeekSchedule() (domain.WeekSchedule, error) {
	week := make(domain.WeekSchedule, 0, len(l.StoreHours))

	for _, day := range l.StoreHours {
		entry := domain.DaySchedule{
			DayOfWeek: time.Weekday(day.DayOfWeek),
			IsClosed:  day.IsClosed,
		}

		// Для закрытого дня часы могут отсутствовать - не парсим их
		if !day.IsClosed {
			open, err := types.NewTimeStringFromString(day.OpenTime)
			if err != nil {
				return nil, err
			}
			closeTime, err := types.NewTimeStringFromString(day.CloseTime)
			if err != nil {
				return nil, err
			}
			entry.OpenTime = open
			entry.CloseTime = closeTime
		}

		week = append(week, entry)
	}

	return week, nil
}

// ErrorResponse модель ошибки от ListingService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
