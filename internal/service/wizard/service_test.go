package wizard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
	"github.com/avdeev-lv/SM-ReservationService/internal/infra/draftstore"
	"github.com/avdeev-lv/SM-ReservationService/internal/integrations/listingservice"
	"github.com/avdeev-lv/SM-ReservationService/pkg/types"
)

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeListingClient struct {
	listing *listingservice.Listing
	err     error
}

func (c *fakeListingClient) GetListing(ctx context.Context, listingID int64) (*listingservice.Listing, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.listing, nil
}

func testListing() *listingservice.Listing {
	hours := make([]listingservice.DayHours, 7)
	for i := range hours {
		hours[i] = listingservice.DayHours{DayOfWeek: i, OpenTime: "09:00", CloseTime: "21:00"}
	}
	return &listingservice.Listing{
		ID:           42,
		BusinessName: "Салон Люкс",
		Services: []listingservice.Service{
			{ID: 1, ServiceName: "Стрижка", Price: 1500},
			{ID: 2, ServiceName: "Окрашивание", Price: 4500},
		},
		Employees: []listingservice.Employee{
			{ID: 10, FullName: "Анна Петрова"},
		},
		StoreHours: hours,
	}
}

// newTestService собирает сервис с фиксированными часами: понедельник 10:15
func newTestService(t *testing.T) (*Service, *fakeTimeProvider) {
	t.Helper()

	clock := &fakeTimeProvider{now: time.Date(2026, 2, 2, 10, 15, 0, 0, time.UTC)}
	svc := NewService(&fakeListingClient{listing: testListing()}, draftstore.NewStore(), nopLogger{})
	svc.timeProvider = clock
	return svc, clock
}

func startDraft(t *testing.T, svc *Service, userID int64) string {
	t.Helper()

	resp, err := svc.Start(context.Background(), userID, 42)
	require.NoError(t, err)
	return resp.DraftID
}

func TestStart(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Start(context.Background(), 7, 42)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.DraftID)
	assert.Equal(t, int64(42), resp.ListingID)
	assert.Equal(t, "Салон Люкс", resp.BusinessName)
	assert.Equal(t, 0, resp.Step)
	assert.Equal(t, "services", resp.StepName)
	assert.Empty(t, resp.SelectedServices)
	assert.Equal(t, float64(0), resp.TotalPrice)
	assert.False(t, resp.CanGoBack)
	assert.Equal(t, "services", resp.MissingField)
}

func TestStartListingNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	svc.listingClient = &fakeListingClient{err: listingservice.ErrListingNotFound}

	_, err := svc.Start(context.Background(), 7, 42)
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestStartListingUnavailable(t *testing.T) {
	svc, _ := newTestService(t)
	svc.listingClient = &fakeListingClient{err: errors.New("connection refused")}

	_, err := svc.Start(context.Background(), 7, 42)
	assert.ErrorIs(t, err, ErrListingUnavailable)
}

func TestStartInvalidInput(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Start(context.Background(), 0, 42)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestToggleService(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	draftID := startDraft(t, svc, 7)

	// Добавление двух услуг
	resp, err := svc.ToggleService(ctx, draftID, 7, 1)
	require.NoError(t, err)
	assert.Len(t, resp.SelectedServices, 1)

	resp, err = svc.ToggleService(ctx, draftID, 7, 2)
	require.NoError(t, err)
	require.Len(t, resp.SelectedServices, 2)
	assert.Equal(t, float64(6000), resp.TotalPrice)
	assert.Empty(t, resp.MissingField)

	// Повторное нажатие убирает услугу
	resp, err = svc.ToggleService(ctx, draftID, 7, 1)
	require.NoError(t, err)
	require.Len(t, resp.SelectedServices, 1)
	assert.Equal(t, "Окрашивание", resp.SelectedServices[0].Name)
	assert.Equal(t, float64(4500), resp.TotalPrice)
}

func TestToggleServiceNotInCatalog(t *testing.T) {
	svc, _ := newTestService(t)
	draftID := startDraft(t, svc, 7)

	_, err := svc.ToggleService(context.Background(), draftID, 7, 999)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestSelectProvider(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	draftID := startDraft(t, svc, 7)

	resp, err := svc.SelectProvider(ctx, draftID, 7, 10)
	require.NoError(t, err)
	require.NotNil(t, resp.SelectedProvider)
	assert.Equal(t, "Анна Петрова", resp.SelectedProvider.FullName)

	_, err = svc.SelectProvider(ctx, draftID, 7, 999)
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestSelectDate(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()
	draftID := startDraft(t, svc, 7)

	t.Run("past date rejected", func(t *testing.T) {
		yesterday := clock.now.AddDate(0, 0, -1)
		_, err := svc.SelectDate(ctx, draftID, 7, yesterday)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("today accepted", func(t *testing.T) {
		resp, err := svc.SelectDate(ctx, draftID, 7, clock.now)
		require.NoError(t, err)
		require.NotNil(t, resp.Date)
		assert.Equal(t, "2026-02-02", *resp.Date)
	})
}

func TestSelectDateClearsStaleTime(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()
	draftID := startDraft(t, svc, 7)

	tomorrow := clock.now.AddDate(0, 0, 1)
	_, err := svc.SelectDate(ctx, draftID, 7, tomorrow)
	require.NoError(t, err)

	// На завтра 11:00 доступен
	resp, err := svc.SelectTime(ctx, draftID, 7, types.TimeString("11:00"))
	require.NoError(t, err)
	assert.Equal(t, "11:00", resp.Time)

	// Сейчас 10:15: на сегодня 11:00 внутри часового буфера, время сбрасывается
	resp, err = svc.SelectDate(ctx, draftID, 7, clock.now)
	require.NoError(t, err)
	assert.Empty(t, resp.Time)
}

func TestSelectTime(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()
	draftID := startDraft(t, svc, 7)

	t.Run("date required first", func(t *testing.T) {
		_, err := svc.SelectTime(ctx, draftID, 7, types.TimeString("12:00"))
		assert.ErrorIs(t, err, ErrIncompleteStep)
	})

	_, err := svc.SelectDate(ctx, draftID, 7, clock.now)
	require.NoError(t, err)

	t.Run("off grid rejected", func(t *testing.T) {
		_, err := svc.SelectTime(ctx, draftID, 7, types.TimeString("12:30"))
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)

		_, err = svc.SelectTime(ctx, draftID, 7, types.TimeString("08:00"))
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("within notice buffer rejected", func(t *testing.T) {
		// Сейчас 10:15, слот 11:00 начинается меньше чем через час
		_, err := svc.SelectTime(ctx, draftID, 7, types.TimeString("11:00"))
		assert.ErrorIs(t, err, ErrSlotNotBookable)
	})

	t.Run("bookable slot accepted", func(t *testing.T) {
		resp, err := svc.SelectTime(ctx, draftID, 7, types.TimeString("12:00"))
		require.NoError(t, err)
		assert.Equal(t, "12:00", resp.Time)
	})
}

func TestSetNote(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	draftID := startDraft(t, svc, 7)

	resp, err := svc.SetNote(ctx, draftID, 7, "аллергия на аммиак")
	require.NoError(t, err)
	assert.Equal(t, "аллергия на аммиак", resp.Note)

	_, err = svc.SetNote(ctx, draftID, 7, strings.Repeat("a", domain.MaxNoteLength+1))
	assert.ErrorIs(t, err, ErrNoteTooLong)
}

func TestAdvance(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()
	draftID := startDraft(t, svc, 7)

	t.Run("back from first step", func(t *testing.T) {
		_, err := svc.Advance(ctx, draftID, 7, DirectionBack)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("next blocked without selection", func(t *testing.T) {
		_, err := svc.Advance(ctx, draftID, 7, DirectionNext)
		assert.ErrorIs(t, err, ErrIncompleteStep)
		assert.Contains(t, err.Error(), "services")
	})

	t.Run("invalid direction", func(t *testing.T) {
		_, err := svc.Advance(ctx, draftID, 7, Direction("sideways"))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("full walk to review", func(t *testing.T) {
		_, err := svc.ToggleService(ctx, draftID, 7, 1)
		require.NoError(t, err)

		resp, err := svc.Advance(ctx, draftID, 7, DirectionNext)
		require.NoError(t, err)
		assert.Equal(t, "provider", resp.StepName)
		assert.True(t, resp.CanGoBack)

		_, err = svc.SelectProvider(ctx, draftID, 7, 10)
		require.NoError(t, err)
		resp, err = svc.Advance(ctx, draftID, 7, DirectionNext)
		require.NoError(t, err)
		assert.Equal(t, "date", resp.StepName)

		_, err = svc.SelectDate(ctx, draftID, 7, clock.now.AddDate(0, 0, 1))
		require.NoError(t, err)
		resp, err = svc.Advance(ctx, draftID, 7, DirectionNext)
		require.NoError(t, err)
		assert.Equal(t, "time", resp.StepName)

		_, err = svc.SelectTime(ctx, draftID, 7, types.TimeString("14:00"))
		require.NoError(t, err)
		resp, err = svc.Advance(ctx, draftID, 7, DirectionNext)
		require.NoError(t, err)
		assert.Equal(t, "review", resp.StepName)

		// Дальше последнего шага не уйти
		_, err = svc.Advance(ctx, draftID, 7, DirectionNext)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		// Назад с review возвращает на time
		resp, err = svc.Advance(ctx, draftID, 7, DirectionBack)
		require.NoError(t, err)
		assert.Equal(t, "time", resp.StepName)
	})
}

func TestAccessControl(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	draftID := startDraft(t, svc, 7)

	_, err := svc.Get(ctx, draftID, 8)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Get(ctx, "no-such-draft", 7)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestCancel(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	draftID := startDraft(t, svc, 7)

	// Чужой черновик отменить нельзя
	err := svc.Cancel(ctx, draftID, 8)
	assert.ErrorIs(t, err, ErrAccessDenied)

	require.NoError(t, svc.Cancel(ctx, draftID, 7))

	_, err = svc.Get(ctx, draftID, 7)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
