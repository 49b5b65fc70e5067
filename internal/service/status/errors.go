package status

import "errors"

var (
	// ErrListingNotFound листинг не найден
	ErrListingNotFound = errors.New("status: listing not found")
	// ErrProviderNotFound мастер не найден в листинге
	ErrProviderNotFound = errors.New("status: provider not found")
	// ErrListingUnavailable сервис листингов недоступен
	ErrListingUnavailable = errors.New("status: listing service unavailable")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("status: internal error")
)
