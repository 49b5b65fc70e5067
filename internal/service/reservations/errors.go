package reservations

import "errors"

var (
	// ErrReservationNotFound бронирование не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")
	// ErrAccessDenied бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("reservations: access denied")
	// ErrAlreadyCancelled бронирование уже отменено
	ErrAlreadyCancelled = errors.New("reservations: reservation already cancelled")
	// ErrInvalidStatus неизвестный статус в фильтре
	ErrInvalidStatus = errors.New("reservations: invalid status filter")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("reservations: internal error")
)
