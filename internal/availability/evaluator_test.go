package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
	"github.com/avdeev-lv/SM-ReservationService/pkg/types"
)

func workday(open, close string) *domain.DaySchedule {
	return &domain.DaySchedule{
		OpenTime:  types.TimeString(open),
		CloseTime: types.TimeString(close),
	}
}

func TestStatusAt(t *testing.T) {
	tests := []struct {
		name         string
		nowMinute    int
		today        *domain.DaySchedule
		wantMessage  string
		wantSeverity domain.Severity
	}{
		{
			// 14:00 при графике 09:00-18:00: до закрытия 240 минут
			name:         "open mid-day",
			nowMinute:    840,
			today:        workday("09:00", "18:00"),
			wantMessage:  domain.StatusMessageOpen,
			wantSeverity: domain.SeverityGreen,
		},
		{
			// 20:45 при закрытии в 21:00: 15 минут до закрытия
			name:         "closing soon",
			nowMinute:    20*60 + 45,
			today:        workday("09:00", "21:00"),
			wantMessage:  domain.StatusMessageClosing,
			wantSeverity: domain.SeverityOrange,
		},
		{
			// 19:30 при закрытии в 21:00: 90 минут до закрытия
			name:         "closing within two hours",
			nowMinute:    19*60 + 30,
			today:        workday("09:00", "21:00"),
			wantMessage:  domain.StatusMessageClosing,
			wantSeverity: domain.SeverityGreen,
		},
		{
			// Ровно 30 минут до закрытия - граница оранжевой зоны
			name:         "exactly 30 minutes to close",
			nowMinute:    20*60 + 30,
			today:        workday("09:00", "21:00"),
			wantMessage:  domain.StatusMessageClosing,
			wantSeverity: domain.SeverityOrange,
		},
		{
			// Ровно 120 минут до закрытия - граница зелёной зоны "Closing"
			name:         "exactly 120 minutes to close",
			nowMinute:    19 * 60,
			today:        workday("09:00", "21:00"),
			wantMessage:  domain.StatusMessageClosing,
			wantSeverity: domain.SeverityGreen,
		},
		{
			// 08:30 до открытия в 09:00
			name:         "before opening",
			nowMinute:    8*60 + 30,
			today:        workday("09:00", "18:00"),
			wantMessage:  domain.StatusMessageOpeningSoon,
			wantSeverity: domain.SeverityOrange,
		},
		{
			// Момент открытия входит в рабочий интервал
			name:         "exactly at open",
			nowMinute:    9 * 60,
			today:        workday("09:00", "18:00"),
			wantMessage:  domain.StatusMessageOpen,
			wantSeverity: domain.SeverityGreen,
		},
		{
			// Момент закрытия уже не входит: [open, close)
			name:         "exactly at close",
			nowMinute:    18 * 60,
			today:        workday("09:00", "18:00"),
			wantMessage:  domain.StatusMessageClosed,
			wantSeverity: domain.SeverityRed,
		},
		{
			name:         "after close",
			nowMinute:    22 * 60,
			today:        workday("09:00", "18:00"),
			wantMessage:  domain.StatusMessageClosed,
			wantSeverity: domain.SeverityRed,
		},
		{
			name:         "closed day",
			nowMinute:    840,
			today:        &domain.DaySchedule{IsClosed: true},
			wantMessage:  domain.StatusMessageClosed,
			wantSeverity: domain.SeverityRed,
		},
		{
			// Нет данных на этот день недели
			name:         "missing day",
			nowMinute:    840,
			today:        nil,
			wantMessage:  domain.StatusMessageClosed,
			wantSeverity: domain.SeverityRed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := StatusAt(tt.nowMinute, tt.today)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMessage, status.Message)
			assert.Equal(t, tt.wantSeverity, status.Severity)
		})
	}
}

func TestStatusAt_MalformedSchedule(t *testing.T) {
	_, err := StatusAt(840, workday("garbage", "18:00"))
	assert.Error(t, err)
}

func TestStatusAtTime(t *testing.T) {
	week := domain.WeekSchedule{
		{DayOfWeek: time.Monday, OpenTime: "09:00", CloseTime: "18:00"},
	}

	// Понедельник 14:00
	monday := time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC)
	status, err := StatusAtTime(monday, week)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusMessageOpen, status.Message)

	// Вторник отсутствует в расписании - для бейджа это "Closed"
	tuesday := monday.AddDate(0, 0, 1)
	status, err = StatusAtTime(tuesday, week)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusMessageClosed, status.Message)
	assert.Equal(t, domain.SeverityRed, status.Severity)
}

func TestIsSlotBookable(t *testing.T) {
	now := time.Date(2026, 9, 7, 8, 30, 0, 0, time.UTC)
	today := now
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name string
		slot string
		date time.Time
		want bool
	}{
		// Будущая дата бронируется всегда, даже раннее утро
		{"future date early slot", "09:00", tomorrow, true},
		// Сегодня 08:30: буфер до 09:30, слот 09:30 ровно на границе - не бронируется
		{"today at buffer boundary", "09:30", today, false},
		// Минутой позже границы - бронируется
		{"today just past buffer", "09:31", today, true},
		{"today well past buffer", "11:00", today, true},
		{"today before now", "08:00", today, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsSlotBookable(types.TimeString(tt.slot), tt.date, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSlotBookable_InvalidSlot(t *testing.T) {
	now := time.Date(2026, 9, 7, 8, 30, 0, 0, time.UTC)
	_, err := IsSlotBookable("garbage", now, now)
	assert.Error(t, err)
}
