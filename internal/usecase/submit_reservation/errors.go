package submit_reservation

import "errors"

var (
	// ErrDraftNotFound черновик не найден
	ErrDraftNotFound = errors.New("submit_reservation: draft not found")
	// ErrAccessDenied черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("submit_reservation: access denied")
	// ErrNotOnReviewStep подтверждение доступно только с последнего шага
	ErrNotOnReviewStep = errors.New("submit_reservation: draft is not on review step")
	// ErrIncompleteDraft в черновике не хватает обязательных данных
	ErrIncompleteDraft = errors.New("submit_reservation: draft is incomplete")
	// ErrSlotNotBookable выбранный слот перестал быть доступным
	ErrSlotNotBookable = errors.New("submit_reservation: slot is no longer bookable")
	// ErrUnauthenticated у пользователя нет активной сессии
	ErrUnauthenticated = errors.New("submit_reservation: user is not authenticated")
	// ErrCheckoutRejected сервис оплаты отклонил заказ
	ErrCheckoutRejected = errors.New("submit_reservation: checkout rejected the order")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("submit_reservation: internal error")
)
