package wizard

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден (истёк или отменён)
	ErrDraftNotFound = errors.New("wizard: draft not found")

	// ErrAccessDenied возвращается при попытке работать с чужим черновиком
	ErrAccessDenied = errors.New("wizard: access denied")

	// ErrListingNotFound возвращается, когда листинг не найден
	ErrListingNotFound = errors.New("wizard: listing not found")

	// ErrListingUnavailable возвращается, когда данные листинга не удалось загрузить
	// Ошибка восстановимая: состояние шага сохраняется, запрос можно повторить
	ErrListingUnavailable = errors.New("wizard: listing data unavailable")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге листинга
	ErrServiceNotFound = errors.New("wizard: service not found in listing catalog")

	// ErrProviderNotFound возвращается, когда мастер не найден в листинге
	ErrProviderNotFound = errors.New("wizard: provider not found in listing")

	// ErrIncompleteStep возвращается при попытке перейти дальше с незавершённым шагом
	ErrIncompleteStep = errors.New("wizard: current step is incomplete")

	// ErrInvalidTransition возвращается при недопустимом переходе
	// (back с первого шага, next с последнего)
	ErrInvalidTransition = errors.New("wizard: invalid step transition")

	// ErrInvalidDate возвращается при выборе даты в прошлом
	ErrInvalidDate = errors.New("wizard: invalid reservation date")

	// ErrInvalidTimeSlot возвращается, когда время не входит в сетку слотов
	ErrInvalidTimeSlot = errors.New("wizard: time is not a valid slot")

	// ErrSlotNotBookable возвращается, когда слот уже нельзя забронировать
	// из-за буфера минимального времени до начала
	ErrSlotNotBookable = errors.New("wizard: slot is no longer bookable")

	// ErrNoteTooLong возвращается при превышении лимита длины заметки
	ErrNoteTooLong = errors.New("wizard: note is too long")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("wizard: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wizard: internal error")
)
