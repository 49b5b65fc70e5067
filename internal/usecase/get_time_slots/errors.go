package get_time_slots

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("get_time_slots: invalid input")
	// ErrInvalidDate дата в прошлом
	ErrInvalidDate = errors.New("get_time_slots: date is in the past")
	// ErrListingNotFound листинг не найден
	ErrListingNotFound = errors.New("get_time_slots: listing not found")
	// ErrListingUnavailable сервис листингов недоступен
	ErrListingUnavailable = errors.New("get_time_slots: listing service unavailable")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("get_time_slots: internal error")
)
