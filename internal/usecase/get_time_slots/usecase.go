package get_time_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdeev-lv/SM-ReservationService/internal/availability"
	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
	listingClient "github.com/avdeev-lv/SM-ReservationService/internal/integrations/listingservice"
	"github.com/avdeev-lv/SM-ReservationService/pkg/types"
)

// UseCase use case получения сетки слотов на дату
// Сетка фиксированная и почасовая; недоступные слоты не вырезаются,
// а помечаются, чтобы интерфейс мог их показать неактивными
type UseCase struct {
	listingClient ListingServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(listingClient ListingServiceClient, logger Logger) *UseCase {
	return &UseCase{
		listingClient: listingClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTimeSlots: listing=%d, date=%s", req.ListingID, req.Date.Format(domain.DateFormat))

	if req.ListingID <= 0 {
		return nil, fmt.Errorf("%w: listingID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetTimeSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// Листинг запрашивается для проверки существования: сетка слотов от
	// него не зависит
	if _, err := uc.listingClient.GetListing(ctx, req.ListingID); err != nil {
		if errors.Is(err, listingClient.ErrListingNotFound) {
			return nil, ErrListingNotFound
		}
		uc.logger.Error("GetTimeSlots: failed to fetch listing id=%d: %v", req.ListingID, err)
		return nil, fmt.Errorf("%w: %v", ErrListingUnavailable, err)
	}

	slots, err := buildSlotGrid(req.Date, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{Date: req.Date, Slots: slots}, nil
}

// buildSlotGrid строит почасовую сетку слотов с признаком доступности
func buildSlotGrid(date, now time.Time) ([]Slot, error) {
	slots := make([]Slot, 0, domain.SlotLastHour-domain.SlotFirstHour+1)

	for hour := domain.SlotFirstHour; hour <= domain.SlotLastHour; hour++ {
		slotTime, err := types.NewTimeStringFromMinutes(hour * 60)
		if err != nil {
			return nil, err
		}

		bookable, err := availability.IsSlotBookable(slotTime, date, now)
		if err != nil {
			return nil, err
		}

		slots = append(slots, Slot{Time: slotTime, Bookable: bookable})
	}

	return slots, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
