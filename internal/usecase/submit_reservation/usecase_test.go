package submit_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
	"github.com/avdeev-lv/SM-ReservationService/internal/infra/draftstore"
	"github.com/avdeev-lv/SM-ReservationService/internal/integrations/checkoutservice"
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

type fakeReservationRepo struct {
	created *domain.Reservation
	err     error
}

func (r *fakeReservationRepo) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	if r.err != nil {
		return nil, r.err
	}
	saved := *reservation
	saved.ID = 100
	r.created = &saved
	return &saved, nil
}

type fakeAuthClient struct {
	authenticated bool
	err           error
}

func (c *fakeAuthClient) IsAuthenticated(ctx context.Context, userID int64) (bool, error) {
	return c.authenticated, c.err
}

func (c *fakeAuthClient) LoginURL() string {
	return "https://auth.example.com/login"
}

type fakeCheckoutClient struct {
	payload *checkoutservice.Payload
	err     error
}

func (c *fakeCheckoutClient) StartCheckout(ctx context.Context, payload *checkoutservice.Payload) error {
	if c.err != nil {
		return c.err
	}
	c.payload = payload
	return nil
}

type fakeTxManager struct{}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type testEnv struct {
	uc       *UseCase
	drafts   *draftstore.Store
	repo     *fakeReservationRepo
	auth     *fakeAuthClient
	checkout *fakeCheckoutClient
	clock    *fakeTimeProvider
}

// newTestEnv собирает use case с фиксированными часами: 2026-02-02 10:15
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		drafts:   draftstore.NewStore(),
		repo:     &fakeReservationRepo{},
		auth:     &fakeAuthClient{authenticated: true},
		checkout: &fakeCheckoutClient{},
		clock:    &fakeTimeProvider{now: time.Date(2026, 2, 2, 10, 15, 0, 0, time.UTC)},
	}
	env.uc = NewUseCase(env.drafts, env.repo, env.auth, env.checkout, &fakeTxManager{}, nopLogger{})
	env.uc.timeProvider = env.clock
	return env
}

// putCompleteDraft кладет в хранилище готовый к подтверждению черновик
// на завтра в 14:00
func (env *testEnv) putCompleteDraft(t *testing.T) *domain.ReservationDraft {
	t.Helper()

	date := env.clock.now.AddDate(0, 0, 1)
	draft := &domain.ReservationDraft{
		ID:           "draft-1",
		UserID:       7,
		ListingID:    42,
		BusinessName: "Салон Люкс",
		Step:         domain.StepReview,
		SelectedServices: []domain.SelectedService{
			{ID: 1, Name: "Стрижка", Price: 1500},
			{ID: 2, Name: "Окрашивание", Price: 4500},
		},
		SelectedProvider: &domain.SelectedProvider{ID: 10, FullName: "Анна Петрова"},
		Date:             &date,
		Time:             types.TimeString("14:00"),
		Note:             "аллергия на аммиак",
	}
	env.drafts.Put(&draftstore.Session{Draft: draft})
	return draft
}

func TestExecuteSuccess(t *testing.T) {
	env := newTestEnv(t)
	env.putCompleteDraft(t)

	resp, redirect, err := env.uc.Execute(context.Background(), &Request{DraftID: "draft-1", UserID: 7})
	require.NoError(t, err)
	require.Nil(t, redirect)
	require.NotNil(t, resp)

	assert.Equal(t, int64(100), resp.ReservationID)
	assert.Equal(t, int64(42), resp.ListingID)
	assert.Equal(t, "Салон Люкс", resp.BusinessName)
	assert.Equal(t, "2026-02-03", resp.Date)
	assert.Equal(t, "14:00", resp.Time)
	assert.Equal(t, float64(6000), resp.TotalPrice)
	assert.Equal(t, string(domain.StatusPendingPayment), resp.Status)

	// Бронирование сохранено в статусе ожидания оплаты
	require.NotNil(t, env.repo.created)
	assert.Equal(t, domain.StatusPendingPayment, env.repo.created.Status)
	assert.Len(t, env.repo.created.Services, 2)
	require.NotNil(t, env.repo.created.Note)
	assert.Equal(t, "аллергия на аммиак", *env.repo.created.Note)

	// Заказ передан в оплату
	require.NotNil(t, env.checkout.payload)
	assert.Equal(t, float64(6000), env.checkout.payload.TotalPrice)
	assert.Equal(t, int64(10), env.checkout.payload.EmployeeID)

	// Черновик уничтожен только после успеха
	_, err = env.drafts.Get("draft-1")
	assert.ErrorIs(t, err, draftstore.ErrDraftNotFound)
}

func TestExecuteUnauthenticatedRedirectsToLogin(t *testing.T) {
	env := newTestEnv(t)
	env.putCompleteDraft(t)
	env.auth.authenticated = false

	resp, redirect, err := env.uc.Execute(context.Background(), &Request{DraftID: "draft-1", UserID: 7})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Nil(t, resp)
	require.NotNil(t, redirect)
	assert.Equal(t, "https://auth.example.com/login", redirect.LoginURL)

	// Черновик не тронут и ничего не создано
	_, err = env.drafts.Get("draft-1")
	assert.NoError(t, err)
	assert.Nil(t, env.repo.created)
	assert.Nil(t, env.checkout.payload)
}

func TestExecuteDraftNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.uc.Execute(context.Background(), &Request{DraftID: "no-such-draft", UserID: 7})
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestExecuteAccessDenied(t *testing.T) {
	env := newTestEnv(t)
	env.putCompleteDraft(t)

	_, _, err := env.uc.Execute(context.Background(), &Request{DraftID: "draft-1", UserID: 8})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecuteNotOnReviewStep(t *testing.T) {
	env := newTestEnv(t)
	draft := env.putCompleteDraft(t)
	draft.Step = domain.StepTime
	env.drafts.Put(&draftstore.Session{Draft: draft})

	_, _, err := env.uc.Execute(context.Background(), &Request{DraftID: "draft-1", UserID: 7})
	assert.ErrorIs(t, err, ErrNotOnReviewStep)
}

func TestExecuteIncompleteDraft(t *testing.T) {
	env := newTestEnv(t)
	draft := env.putCompleteDraft(t)
	draft.SelectedProvider = nil
	env.drafts.Put(&draftstore.Session{Draft: draft})

	_, _, err := env.uc.Execute(context.Background(), &Request{DraftID: "draft-1", UserID: 7})
	assert.ErrorIs(t, err, ErrIncompleteDraft)
	assert.Contains(t, err.Error(), "provider")
}

func TestExecuteSlotWentStale(t *testing.T) {
	env := newTestEnv(t)
	draft := env.putCompleteDraft(t)

	// Слот на сегодня 11:00 при текущем времени 10:15 уже внутри буфера
	today := env.clock.now
	draft.Date = &today
	draft.Time = types.TimeString("11:00")
	env.drafts.Put(&draftstore.Session{Draft: draft})

	_, _, err := env.uc.Execute(context.Background(), &Request{DraftID: "draft-1", UserID: 7})
	assert.ErrorIs(t, err, ErrSlotNotBookable)

	// Черновик сохранен: пользователь выберет другой слот
	_, err = env.drafts.Get("draft-1")
	assert.NoError(t, err)
}

func TestExecuteCheckoutRejected(t *testing.T) {
	env := newTestEnv(t)
	env.putCompleteDraft(t)
	env.checkout.err = checkoutservice.ErrCheckoutRejected

	_, _, err := env.uc.Execute(context.Background(), &Request{DraftID: "draft-1", UserID: 7})
	assert.ErrorIs(t, err, ErrCheckoutRejected)

	// Черновик остается для повторной попытки
	_, err = env.drafts.Get("draft-1")
	assert.NoError(t, err)
}
