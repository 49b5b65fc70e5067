package availability

import (
	"time"

	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
	"github.com/avdeev-lv/SM-ReservationService/pkg/types"
)

// Единственная реализация вычисления статуса доступности.
// Оба бейджа (листинг и мастер) и пикер слотов обязаны ходить сюда -
// локальных копий этой логики быть не должно.

// StatusAt вычисляет статус доступности по минуте суток и расписанию на сегодня
// today == nil означает отсутствие данных на этот день - для бейджа это "Closed"
func StatusAt(nowMinute int, today *domain.DaySchedule) (domain.AvailabilityStatus, error) {
	if today == nil || today.IsClosed {
		return domain.AvailabilityStatus{
			Message:  domain.StatusMessageClosed,
			Severity: domain.SeverityRed,
		}, nil
	}

	open, err := today.OpenTime.MinuteOfDay()
	if err != nil {
		return domain.AvailabilityStatus{}, err
	}

	close, err := today.CloseTime.MinuteOfDay()
	if err != nil {
		return domain.AvailabilityStatus{}, err
	}

	// Внутри рабочего дня: [open, close)
	if nowMinute >= open && nowMinute < close {
		minutesUntilClose := close - nowMinute

		switch {
		case minutesUntilClose <= domain.ClosingSoonThresholdMinutes:
			return domain.AvailabilityStatus{
				Message:  domain.StatusMessageClosing,
				Severity: domain.SeverityOrange,
			}, nil
		case minutesUntilClose <= domain.ClosingThresholdMinutes:
			return domain.AvailabilityStatus{
				Message:  domain.StatusMessageClosing,
				Severity: domain.SeverityGreen,
			}, nil
		default:
			return domain.AvailabilityStatus{
				Message:  domain.StatusMessageOpen,
				Severity: domain.SeverityGreen,
			}, nil
		}
	}

	// Ещё не открылись сегодня
	if nowMinute < open {
		return domain.AvailabilityStatus{
			Message:  domain.StatusMessageOpeningSoon,
			Severity: domain.SeverityOrange,
		}, nil
	}

	// Уже закрылись
	return domain.AvailabilityStatus{
		Message:  domain.StatusMessageClosed,
		Severity: domain.SeverityRed,
	}, nil
}

// StatusAtTime вычисляет статус по wall-clock времени и недельному расписанию
func StatusAtTime(now time.Time, week domain.WeekSchedule) (domain.AvailabilityStatus, error) {
	today := week.ForWeekday(now.Weekday())
	nowMinute := now.Hour()*60 + now.Minute()
	return StatusAt(nowMinute, today)
}

// IsSlotBookable проверяет, можно ли ещё забронировать слот на указанную дату.
// Для будущих дат ограничений нет; для сегодняшней даты слот должен начинаться
// СТРОГО позже, чем now + MinBookingNoticeMinutes (равенство не бронируется)
func IsSlotBookable(slot types.TimeString, date time.Time, now time.Time) (bool, error) {
	if !isSameDay(date, now) {
		return true, nil
	}

	slotMinute, err := slot.MinuteOfDay()
	if err != nil {
		return false, err
	}

	bufferMinute := now.Hour()*60 + now.Minute() + domain.MinBookingNoticeMinutes
	return slotMinute > bufferMinute, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
