package domain

import (
	"time"

	"github.com/avdeev-lv/SM-ReservationService/pkg/types"
)

// DaySchedule часы работы листинга на один день недели
type DaySchedule struct {
	DayOfWeek time.Weekday
	OpenTime  types.TimeString
	CloseTime types.TimeString
	IsClosed  bool
}

// WeekSchedule расписание работы на неделю: 0-7 записей, по одной на день.
// Отсутствие записи на день означает "нет данных" и отличается от явного IsClosed
type WeekSchedule []DaySchedule

// ForWeekday возвращает расписание на указанный день недели или nil, если данных нет
func (w WeekSchedule) ForWeekday(day time.Weekday) *DaySchedule {
	for i := range w {
		if w[i].DayOfWeek == day {
			return &w[i]
		}
	}
	return nil
}

// Severity цветовая категория статуса доступности
type Severity string

const (
	SeverityGreen  Severity = "green"
	SeverityOrange Severity = "orange"
	SeverityRed    Severity = "red"
)

// Status messages
const (
	StatusMessageOpen        = "Open"
	StatusMessageClosing     = "Closing"
	StatusMessageOpeningSoon = "Opening Soon"
	StatusMessageClosed      = "Closed"
)

// AvailabilityStatus вычисленный статус доступности листинга.
// Вычисляется по требованию из текущего времени и расписания, никогда не хранится
type AvailabilityStatus struct {
	Message  string
	Severity Severity
}
