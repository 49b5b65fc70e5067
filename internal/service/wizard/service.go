package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdeev-lv/SM-ReservationService/internal/availability"
	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
	"github.com/avdeev-lv/SM-ReservationService/internal/infra/draftstore"
	listingClient "github.com/avdeev-lv/SM-ReservationService/internal/integrations/listingservice"
	"github.com/avdeev-lv/SM-ReservationService/internal/service/wizard/models"
	"github.com/avdeev-lv/SM-ReservationService/pkg/types"
)

// Direction направление перехода между шагами
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionBack Direction = "back"
)

// Service сервис мастера бронирования: жизненный цикл черновика,
// агрегация выбора и переходы между шагами
type Service struct {
	listingClient ListingServiceClient
	drafts        DraftStore
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса мастера
func NewService(
	listingClient ListingServiceClient,
	drafts DraftStore,
	logger Logger,
) *Service {
	return &Service{
		listingClient: listingClient,
		drafts:        drafts,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Start открывает мастер: один раз загружает данные листинга и создает
// пустой черновик на первом шаге
func (s *Service) Start(ctx context.Context, userID, listingID int64) (*models.DraftResponse, error) {
	s.logger.Info("Start: opening wizard for user=%d, listing=%d", userID, listingID)

	if userID <= 0 || listingID <= 0 {
		return nil, fmt.Errorf("%w: userID and listingID must be positive", ErrInvalidInput)
	}

	listing, err := s.listingClient.GetListing(ctx, listingID)
	if err != nil {
		if errors.Is(err, listingClient.ErrListingNotFound) {
			s.logger.Warn("Start: listing id=%d not found", listingID)
			return nil, ErrListingNotFound
		}
		// Неудачная загрузка - восстановимая ошибка, мастер не открывается
		s.logger.Error("Start: failed to fetch listing id=%d: %v", listingID, err)
		return nil, fmt.Errorf("%w: %v", ErrListingUnavailable, err)
	}

	snapshot, err := snapshotFromListing(listing)
	if err != nil {
		s.logger.Error("Start: listing id=%d has malformed store hours: %v", listingID, err)
		return nil, fmt.Errorf("%w: malformed store hours: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	draft := &domain.ReservationDraft{
		ID:               draftstore.NewID(),
		UserID:           userID,
		ListingID:        listingID,
		BusinessName:     listing.BusinessName,
		Step:             domain.StepServices,
		SelectedServices: make([]domain.SelectedService, 0),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	s.drafts.Put(&draftstore.Session{Draft: draft, Listing: snapshot})

	s.logger.Info("Start: created draft id=%s for user=%d, listing=%d", draft.ID, userID, listingID)
	return models.FromDomainDraft(draft), nil
}

// Get возвращает текущее состояние черновика
func (s *Service) Get(ctx context.Context, draftID string, userID int64) (*models.DraftResponse, error) {
	session, err := s.loadSession(draftID, userID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainDraft(session.Draft), nil
}

// ToggleService добавляет услугу в выбор или убирает, если она уже выбрана
func (s *Service) ToggleService(ctx context.Context, draftID string, userID, serviceID int64) (*models.DraftResponse, error) {
	session, err := s.loadSession(draftID, userID)
	if err != nil {
		return nil, err
	}

	service := session.Listing.FindService(serviceID)
	if service == nil {
		s.logger.Warn("ToggleService: service id=%d not in catalog of listing=%d", serviceID, session.Draft.ListingID)
		return nil, ErrServiceNotFound
	}

	added := session.Draft.ToggleService(*service)
	s.touch(session)

	s.logger.Info("ToggleService: draft=%s service=%d added=%t total=%.2f",
		draftID, serviceID, added, session.Draft.TotalPrice())
	return models.FromDomainDraft(session.Draft), nil
}

// SelectProvider выбирает мастера, заменяя предыдущий выбор
func (s *Service) SelectProvider(ctx context.Context, draftID string, userID, providerID int64) (*models.DraftResponse, error) {
	session, err := s.loadSession(draftID, userID)
	if err != nil {
		return nil, err
	}

	provider := session.Listing.FindProvider(providerID)
	if provider == nil {
		s.logger.Warn("SelectProvider: provider id=%d not in listing=%d", providerID, session.Draft.ListingID)
		return nil, ErrProviderNotFound
	}

	session.Draft.SelectProvider(*provider)
	s.touch(session)

	s.logger.Info("SelectProvider: draft=%s provider=%d (%s)", draftID, providerID, provider.FullName)
	return models.FromDomainDraft(session.Draft), nil
}

// SelectDate выбирает дату бронирования
// Если ранее выбранное время перестает быть бронируемым на новую дату
// (правило same-day буфера), оно сбрасывается
func (s *Service) SelectDate(ctx context.Context, draftID string, userID int64, date time.Time) (*models.DraftResponse, error) {
	session, err := s.loadSession(draftID, userID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	if isDateInPast(date, now) {
		s.logger.Warn("SelectDate: draft=%s date %s is in the past", draftID, date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	session.Draft.Date = &date

	// Проверяем ранее выбранное время против новой даты
	if !session.Draft.Time.IsZero() {
		bookable, err := availability.IsSlotBookable(session.Draft.Time, date, now)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if !bookable {
			s.logger.Info("SelectDate: draft=%s clearing stale time %s for new date %s",
				draftID, session.Draft.Time, date.Format(domain.DateFormat))
			session.Draft.Time = ""
		}
	}

	s.touch(session)

	s.logger.Info("SelectDate: draft=%s date=%s", draftID, date.Format(domain.DateFormat))
	return models.FromDomainDraft(session.Draft), nil
}

// SelectTime выбирает временной слот
// Слот обязан быть из почасовой сетки и проходить проверку буфера;
// недоступный слот отклоняется, даже если клиент прислал его напрямую
func (s *Service) SelectTime(ctx context.Context, draftID string, userID int64, slot types.TimeString) (*models.DraftResponse, error) {
	session, err := s.loadSession(draftID, userID)
	if err != nil {
		return nil, err
	}

	if session.Draft.Date == nil {
		return nil, fmt.Errorf("%w: date is required", ErrIncompleteStep)
	}

	if !isOnSlotGrid(slot) {
		s.logger.Warn("SelectTime: draft=%s time %s is not on the hourly grid", draftID, slot)
		return nil, ErrInvalidTimeSlot
	}

	now := s.timeProvider.Now()
	bookable, err := availability.IsSlotBookable(slot, *session.Draft.Date, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !bookable {
		s.logger.Warn("SelectTime: draft=%s slot %s is no longer bookable", draftID, slot)
		return nil, ErrSlotNotBookable
	}

	session.Draft.Time = slot
	s.touch(session)

	s.logger.Info("SelectTime: draft=%s time=%s", draftID, slot)
	return models.FromDomainDraft(session.Draft), nil
}

// SetNote устанавливает заметку (опциональное поле последнего шага)
func (s *Service) SetNote(ctx context.Context, draftID string, userID int64, note string) (*models.DraftResponse, error) {
	session, err := s.loadSession(draftID, userID)
	if err != nil {
		return nil, err
	}

	if len(note) > domain.MaxNoteLength {
		return nil, ErrNoteTooLong
	}

	session.Draft.Note = note
	s.touch(session)

	return models.FromDomainDraft(session.Draft), nil
}

// Advance выполняет переход между шагами
// next проходит только при выполненном условии текущего шага;
// back всегда проходит, но недоступен с первого шага. Переходы строго ±1
func (s *Service) Advance(ctx context.Context, draftID string, userID int64, direction Direction) (*models.DraftResponse, error) {
	session, err := s.loadSession(draftID, userID)
	if err != nil {
		return nil, err
	}

	draft := session.Draft

	switch direction {
	case DirectionNext:
		if draft.Step.IsLast() {
			return nil, fmt.Errorf("%w: already on review step, use submit", ErrInvalidTransition)
		}
		if field := draft.MissingFieldForStep(draft.Step); field != "" {
			s.logger.Warn("Advance: draft=%s blocked on step %s, missing %s", draftID, draft.Step, field)
			return nil, fmt.Errorf("%w: %s is required", ErrIncompleteStep, field)
		}
		draft.Step++

	case DirectionBack:
		if draft.Step.IsFirst() {
			return nil, fmt.Errorf("%w: back is unavailable from the first step", ErrInvalidTransition)
		}
		draft.Step--

	default:
		return nil, fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, direction)
	}

	s.touch(session)

	s.logger.Info("Advance: draft=%s -> step %d (%s)", draftID, draft.Step, draft.Step)
	return models.FromDomainDraft(draft), nil
}

// Cancel закрывает мастер и уничтожает черновик
func (s *Service) Cancel(ctx context.Context, draftID string, userID int64) error {
	if _, err := s.loadSession(draftID, userID); err != nil {
		return err
	}

	s.drafts.Delete(draftID)
	s.logger.Info("Cancel: draft=%s discarded by user=%d", draftID, userID)
	return nil
}

// Вспомогательные методы

// loadSession загружает сессию и проверяет права доступа владельца черновика
func (s *Service) loadSession(draftID string, userID int64) (*draftstore.Session, error) {
	session, err := s.drafts.Get(draftID)
	if err != nil {
		if errors.Is(err, draftstore.ErrDraftNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if session.Draft.UserID != userID {
		s.logger.Warn("loadSession: user=%d is not the owner of draft=%s", userID, draftID)
		return nil, ErrAccessDenied
	}

	return session, nil
}

// touch фиксирует изменение черновика в хранилище
func (s *Service) touch(session *draftstore.Session) {
	session.Draft.UpdatedAt = s.timeProvider.Now()
	s.drafts.Put(session)
}

// snapshotFromListing конвертирует данные листинга в доменный слепок
func snapshotFromListing(listing *listingClient.Listing) (*domain.ListingSnapshot, error) {
	week, err := listing.WeekSchedule()
	if err != nil {
		return nil, err
	}

	snapshot := &domain.ListingSnapshot{
		ListingID:    listing.ID,
		BusinessName: listing.BusinessName,
		Services:     make([]domain.SelectedService, len(listing.Services)),
		Providers:    make([]domain.SelectedProvider, len(listing.Employees)),
		Week:         week,
	}

	for i, service := range listing.Services {
		snapshot.Services[i] = domain.SelectedService{
			ID:    service.ID,
			Name:  service.ServiceName,
			Price: service.Price,
		}
	}

	for i, employee := range listing.Employees {
		snapshot.Providers[i] = domain.SelectedProvider{
			ID:       employee.ID,
			FullName: employee.FullName,
		}
	}

	return snapshot, nil
}

// isOnSlotGrid проверяет, что время входит в фиксированную почасовую сетку
// слотов (09:00-17:00 включительно, ровно по часам)
func isOnSlotGrid(slot types.TimeString) bool {
	minute, err := slot.MinuteOfDay()
	if err != nil {
		return false
	}
	if minute%60 != 0 {
		return false
	}
	hour := minute / 60
	return hour >= domain.SlotFirstHour && hour <= domain.SlotLastHour
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
