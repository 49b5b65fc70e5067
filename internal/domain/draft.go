package domain

import (
	"time"

	"github.com/avdeev-lv/SM-ReservationService/pkg/types"
)

// ReservationStep шаг мастера бронирования
// Шаги строго линейны: переходы только на соседний шаг (±1)
type ReservationStep int

const (
	StepServices ReservationStep = iota // выбор услуг (мультивыбор)
	StepProvider                        // выбор мастера
	StepDate                            // выбор даты
	StepTime                            // выбор времени
	StepReview                          // заметка и подтверждение
)

// String возвращает человекочитаемое имя шага
func (s ReservationStep) String() string {
	switch s {
	case StepServices:
		return "services"
	case StepProvider:
		return "provider"
	case StepDate:
		return "date"
	case StepTime:
		return "time"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// IsValid проверяет, что значение шага в допустимом диапазоне
func (s ReservationStep) IsValid() bool {
	return s >= StepServices && s <= StepReview
}

// IsFirst возвращает true для начального шага (back недоступен)
func (s ReservationStep) IsFirst() bool {
	return s == StepServices
}

// IsLast возвращает true для последнего шага (submit доступен только отсюда)
func (s ReservationStep) IsLast() bool {
	return s == StepReview
}

// SelectedService выбранная услуга: копия полей каталога листинга,
// нужных для отображения сводки. Владелец данных - листинг, не черновик
type SelectedService struct {
	ID    int64
	Name  string
	Price float64
}

// SelectedProvider выбранный мастер (копия отображаемых полей)
type SelectedProvider struct {
	ID       int64
	FullName string
}

// ReservationDraft черновик бронирования, собираемый мастером по шагам.
// Живет только в памяти: создается при открытии мастера, уничтожается
// при отмене или успешной передаче в checkout
type ReservationDraft struct {
	ID           string
	UserID       int64
	ListingID    int64
	BusinessName string

	Step             ReservationStep
	SelectedServices []SelectedService
	SelectedProvider *SelectedProvider
	Date             *time.Time
	Time             types.TimeString
	Note             string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ToggleService добавляет услугу в выбор или убирает её, если она уже выбрана.
// Уникальность только по ID; порядок добавления сохраняется.
// Возвращает true, если услуга была добавлена, false - если убрана
func (d *ReservationDraft) ToggleService(service SelectedService) bool {
	for i, s := range d.SelectedServices {
		if s.ID == service.ID {
			d.SelectedServices = append(d.SelectedServices[:i], d.SelectedServices[i+1:]...)
			return false
		}
	}
	d.SelectedServices = append(d.SelectedServices, service)
	return true
}

// HasService проверяет, выбрана ли услуга с указанным ID
func (d *ReservationDraft) HasService(serviceID int64) bool {
	for _, s := range d.SelectedServices {
		if s.ID == serviceID {
			return true
		}
	}
	return false
}

// SelectProvider выбирает мастера, заменяя предыдущий выбор (single-select)
func (d *ReservationDraft) SelectProvider(provider SelectedProvider) {
	d.SelectedProvider = &provider
}

// TotalPrice возвращает суммарную цену выбранных услуг
// Всегда пересчитывается, никогда не кэшируется
func (d *ReservationDraft) TotalPrice() float64 {
	var total float64
	for _, s := range d.SelectedServices {
		total += s.Price
	}
	return total
}

// StepGateSatisfied проверяет, выполнено ли условие завершения шага
func (d *ReservationDraft) StepGateSatisfied(step ReservationStep) bool {
	return d.MissingFieldForStep(step) == ""
}

// MissingFieldForStep возвращает имя незаполненного поля, блокирующего шаг,
// либо пустую строку, если условие шага выполнено
func (d *ReservationDraft) MissingFieldForStep(step ReservationStep) string {
	switch step {
	case StepServices:
		if len(d.SelectedServices) == 0 {
			return "services"
		}
	case StepProvider:
		if d.SelectedProvider == nil {
			return "provider"
		}
	case StepDate:
		if d.Date == nil {
			return "date"
		}
	case StepTime:
		if d.Time.IsZero() {
			return "time"
		}
	case StepReview:
		// Заметка опциональна - шаг всегда завершим
	}
	return ""
}

// MissingFieldForSubmit проверяет все обязательные поля перед отправкой.
// Возвращает имя первого незаполненного поля либо пустую строку
func (d *ReservationDraft) MissingFieldForSubmit() string {
	for _, step := range []ReservationStep{StepServices, StepProvider, StepDate, StepTime} {
		if field := d.MissingFieldForStep(step); field != "" {
			return field
		}
	}
	return ""
}
