package availability

import (
	"sync"
	"time"

	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// DefaultPollInterval период пересчёта статусов наблюдаемых листингов
// Раз в минуту, чтобы "Closing" переходил в "Closed" без запроса клиента
const DefaultPollInterval = 60 * time.Second

// watchIdleTicks число тиков без запроса бейджа, после которого листинг
// снимается с наблюдения (при дефолтном интервале - полчаса)
const watchIdleTicks = 30

type watchedEntry struct {
	schedule  domain.WeekSchedule
	status    domain.AvailabilityStatus
	idleTicks int
}

// Poller единый источник периодического пересчёта статусов доступности.
// Вместо таймера на каждый бейдж - один общий тикер на процесс.
// Листинг попадает под наблюдение при первом запросе бейджа; каждый тик
// статус пересчитывается со СВЕЖИМ "now" (кэшировать now нельзя)
type Poller struct {
	interval     time.Duration
	timeProvider TimeProvider
	logger       Logger

	mu      sync.RWMutex
	entries map[string]*watchedEntry

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewPoller создает poller с указанным периодом пересчёта
func NewPoller(interval time.Duration, timeProvider TimeProvider, logger Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		interval:     interval,
		timeProvider: timeProvider,
		logger:       logger,
		entries:      make(map[string]*watchedEntry),
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// Start запускает фоновый пересчёт статусов
func (p *Poller) Start() {
	go p.run()
}

// Stop останавливает фоновый пересчёт и дожидается завершения горутины
// Обязателен при остановке сервиса - иначе утечка тикера
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopCh)
	})
	<-p.doneCh
}

// Resolve вычисляет актуальный статус листинга и ставит его под наблюдение.
// Расписание обновляется при каждом вызове - данные листинга могли измениться
func (p *Poller) Resolve(key string, schedule domain.WeekSchedule) (domain.AvailabilityStatus, error) {
	now := p.timeProvider.Now()

	status, err := StatusAtTime(now, schedule)
	if err != nil {
		return domain.AvailabilityStatus{}, err
	}

	p.mu.Lock()
	p.entries[key] = &watchedEntry{schedule: schedule, status: status}
	p.mu.Unlock()

	return status, nil
}

// Status возвращает последний вычисленный статус наблюдаемого листинга
func (p *Poller) Status(key string) (domain.AvailabilityStatus, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entry, ok := p.entries[key]
	if !ok {
		return domain.AvailabilityStatus{}, false
	}
	return entry.status, true
}

// Forget убирает листинг из-под наблюдения
func (p *Poller) Forget(key string) {
	p.mu.Lock()
	delete(p.entries, key)
	p.mu.Unlock()
}

func (p *Poller) run() {
	defer close(p.doneCh)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.recomputeAll()
		case <-p.stopCh:
			return
		}
	}
}

// recomputeAll пересчитывает статусы всех наблюдаемых листингов
// и снимает с наблюдения те, чей бейдж давно не запрашивали,
// чтобы карта не росла бесконечно
func (p *Poller) recomputeAll() {
	now := p.timeProvider.Now()

	p.mu.Lock()
	defer p.mu.Unlock()

	for key, entry := range p.entries {
		entry.idleTicks++
		if entry.idleTicks > watchIdleTicks {
			delete(p.entries, key)
			continue
		}

		status, err := StatusAtTime(now, entry.schedule)
		if err != nil {
			p.logger.Error("Poller: failed to recompute status for %s: %v", key, err)
			continue
		}

		if status != entry.status {
			p.logger.Info("Poller: status changed for %s: %s/%s -> %s/%s",
				key, entry.status.Message, entry.status.Severity, status.Message, status.Severity)
		}
		entry.status = status
	}
}
