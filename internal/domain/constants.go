package domain

// Booking constraints
const (
	// MinBookingNoticeMinutes минимальное время до начала слота при бронировании на сегодня.
	// Фиксированная константа системы, не настраивается по листингам
	MinBookingNoticeMinutes = 60

	// Slot grid: фиксированный почасовой список слотов с 09:00 по 17:00 включительно
	SlotFirstHour = 9
	SlotLastHour  = 17

	MaxNoteLength = 500
)

// Status thresholds (в минутах до закрытия)
const (
	ClosingSoonThresholdMinutes = 30
	ClosingThresholdMinutes     = 120
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
var InactiveStatuses = []ReservationStatus{
	StatusCancelledByUser,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []ReservationStatus{
	StatusPendingPayment,
	StatusConfirmed,
}
