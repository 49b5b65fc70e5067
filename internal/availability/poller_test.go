package availability

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
)

type fakeTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

func (p *fakeTimeProvider) Set(now time.Time) {
	p.mu.Lock()
	p.now = now
	p.mu.Unlock()
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func mondaySchedule() domain.WeekSchedule {
	return domain.WeekSchedule{
		{DayOfWeek: time.Monday, OpenTime: "09:00", CloseTime: "18:00"},
	}
}

func TestPoller_Resolve(t *testing.T) {
	clock := &fakeTimeProvider{now: time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC)}
	poller := NewPoller(time.Hour, clock, nopLogger{})

	status, err := poller.Resolve("listing:1", mondaySchedule())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusMessageOpen, status.Message)

	cached, ok := poller.Status("listing:1")
	require.True(t, ok)
	assert.Equal(t, status, cached)

	_, ok = poller.Status("listing:2")
	assert.False(t, ok)
}

func TestPoller_RecomputesOnTick(t *testing.T) {
	// Понедельник 17:45 - "Closing"
	clock := &fakeTimeProvider{now: time.Date(2026, 9, 7, 17, 45, 0, 0, time.UTC)}
	poller := NewPoller(5*time.Millisecond, clock, nopLogger{})
	poller.Start()
	defer poller.Stop()

	status, err := poller.Resolve("listing:1", mondaySchedule())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusMessageClosing, status.Message)

	// Время уходит за закрытие; следующий тик должен перевести бейдж в "Closed"
	clock.Set(time.Date(2026, 9, 7, 18, 5, 0, 0, time.UTC))

	require.Eventually(t, func() bool {
		current, ok := poller.Status("listing:1")
		return ok && current.Message == domain.StatusMessageClosed
	}, time.Second, 5*time.Millisecond)
}

func TestPoller_StopTerminatesLoop(t *testing.T) {
	clock := &fakeTimeProvider{now: time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC)}
	poller := NewPoller(time.Millisecond, clock, nopLogger{})
	poller.Start()

	// Stop блокируется до завершения горутины и безопасен при повторном вызове
	poller.Stop()
	poller.Stop()
}

func TestPoller_EvictsIdleEntries(t *testing.T) {
	clock := &fakeTimeProvider{now: time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC)}
	poller := NewPoller(time.Millisecond, clock, nopLogger{})
	poller.Start()
	defer poller.Stop()

	_, err := poller.Resolve("listing:1", mondaySchedule())
	require.NoError(t, err)

	// Бейдж никто не запрашивает; после watchIdleTicks тиков листинг
	// снимается с наблюдения
	require.Eventually(t, func() bool {
		_, ok := poller.Status("listing:1")
		return !ok
	}, time.Second, 5*time.Millisecond)

	// Повторный запрос бейджа возвращает листинг под наблюдение
	_, err = poller.Resolve("listing:1", mondaySchedule())
	require.NoError(t, err)
	_, ok := poller.Status("listing:1")
	assert.True(t, ok)
}

func TestPoller_Forget(t *testing.T) {
	clock := &fakeTimeProvider{now: time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC)}
	poller := NewPoller(time.Hour, clock, nopLogger{})

	_, err := poller.Resolve("listing:1", mondaySchedule())
	require.NoError(t, err)

	poller.Forget("listing:1")
	_, ok := poller.Status("listing:1")
	assert.False(t, ok)
}
