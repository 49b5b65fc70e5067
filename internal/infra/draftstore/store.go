package draftstore

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
)

var (
	// ErrDraftNotFound возвращается, когда черновик не найден (истёк или отменён)
	ErrDraftNotFound = errors.New("draftstore: draft not found")
)

// Session сессия мастера бронирования: черновик плюс слепок данных
// листинга, загруженный при открытии мастера
type Session struct {
	Draft   *domain.ReservationDraft
	Listing *domain.ListingSnapshot
}

// Store in-memory хранилище сессий мастера бронирования.
// Черновики принципиально не персистентны: живут от открытия мастера
// до отмены или успешной передачи в checkout
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore создает пустое хранилище черновиков
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// NewID генерирует уникальный идентификатор черновика
func NewID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand на практике не отказывает; фоллбэк на время
		return hex.EncodeToString([]byte(time.Now().Format("20060102150405.000000000")))
	}
	return hex.EncodeToString(buf)
}

// Put сохраняет сессию (создание или замена по ID черновика)
func (s *Store) Put(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.Draft.ID] = &Session{
		Draft:   cloneDraft(session.Draft),
		Listing: session.Listing, // слепок неизменяем, копия не нужна
	}
}

// Get возвращает сессию по ID черновика
// Черновик возвращается копией: мутации не видны хранилищу до явного Put
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return &Session{
		Draft:   cloneDraft(session.Draft),
		Listing: session.Listing,
	}, nil
}

// Delete удаляет сессию. Отсутствие сессии не считается ошибкой
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len возвращает количество активных сессий
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// cloneDraft делает глубокую копию черновика
func cloneDraft(d *domain.ReservationDraft) *domain.ReservationDraft {
	copied := *d

	copied.SelectedServices = make([]domain.SelectedService, len(d.SelectedServices))
	copy(copied.SelectedServices, d.SelectedServices)

	if d.SelectedProvider != nil {
		provider := *d.SelectedProvider
		copied.SelectedProvider = &provider
	}

	if d.Date != nil {
		date := *d.Date
		copied.Date = &date
	}

	return &copied
}
