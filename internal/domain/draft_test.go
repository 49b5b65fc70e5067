package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservationDraft_ToggleService(t *testing.T) {
	draft := &ReservationDraft{}

	haircut := SelectedService{ID: 1, Name: "Стрижка", Price: 1500}
	coloring := SelectedService{ID: 2, Name: "Окрашивание", Price: 4000}
	styling := SelectedService{ID: 3, Name: "Укладка", Price: 1200}

	assert.True(t, draft.ToggleService(haircut))
	assert.True(t, draft.ToggleService(coloring))
	assert.True(t, draft.ToggleService(styling))
	assert.Equal(t, 6700.0, draft.TotalPrice())

	// Повторный toggle убирает услугу, порядок остальных сохраняется
	assert.False(t, draft.ToggleService(coloring))
	assert.Equal(t, []SelectedService{haircut, styling}, draft.SelectedServices)
	assert.Equal(t, 2700.0, draft.TotalPrice())

	// Toggle дважды подряд возвращает исходное состояние
	assert.True(t, draft.ToggleService(coloring))
	assert.False(t, draft.ToggleService(coloring))
	assert.Equal(t, []SelectedService{haircut, styling}, draft.SelectedServices)

	assert.True(t, draft.HasService(1))
	assert.False(t, draft.HasService(2))
}

func TestReservationDraft_SelectProvider(t *testing.T) {
	draft := &ReservationDraft{}

	draft.SelectProvider(SelectedProvider{ID: 1, FullName: "Анна Иванова"})
	draft.SelectProvider(SelectedProvider{ID: 2, FullName: "Мария Петрова"})

	// Выбор одиночный: побеждает последний
	assert.Equal(t, int64(2), draft.SelectedProvider.ID)
}

func TestReservationDraft_MissingFieldForStep(t *testing.T) {
	draft := &ReservationDraft{}

	assert.Equal(t, "services", draft.MissingFieldForStep(StepServices))
	assert.Equal(t, "provider", draft.MissingFieldForStep(StepProvider))
	assert.Equal(t, "date", draft.MissingFieldForStep(StepDate))
	assert.Equal(t, "time", draft.MissingFieldForStep(StepTime))
	// Заметка опциональна
	assert.Equal(t, "", draft.MissingFieldForStep(StepReview))

	draft.ToggleService(SelectedService{ID: 1, Price: 100})
	draft.SelectProvider(SelectedProvider{ID: 1})
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	draft.Date = &date
	draft.Time = "10:00"

	for _, step := range []ReservationStep{StepServices, StepProvider, StepDate, StepTime, StepReview} {
		assert.True(t, draft.StepGateSatisfied(step), "step %s", step)
	}
	assert.Equal(t, "", draft.MissingFieldForSubmit())
}

func TestReservationDraft_MissingFieldForSubmit_Order(t *testing.T) {
	draft := &ReservationDraft{}
	assert.Equal(t, "services", draft.MissingFieldForSubmit())

	draft.ToggleService(SelectedService{ID: 1})
	assert.Equal(t, "provider", draft.MissingFieldForSubmit())

	draft.SelectProvider(SelectedProvider{ID: 1})
	assert.Equal(t, "date", draft.MissingFieldForSubmit())

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	draft.Date = &date
	assert.Equal(t, "time", draft.MissingFieldForSubmit())
}

func TestReservationStep(t *testing.T) {
	assert.True(t, StepServices.IsFirst())
	assert.False(t, StepReview.IsFirst())
	assert.True(t, StepReview.IsLast())
	assert.False(t, StepTime.IsLast())

	assert.True(t, StepServices.IsValid())
	assert.True(t, StepReview.IsValid())
	assert.False(t, ReservationStep(5).IsValid())
	assert.False(t, ReservationStep(-1).IsValid())

	assert.Equal(t, "services", StepServices.String())
	assert.Equal(t, "review", StepReview.String())
	assert.Equal(t, "unknown", ReservationStep(42).String())
}
