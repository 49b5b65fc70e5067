package status

import (
	"context"
	"errors"
	"fmt"

	listingClient "github.com/avdeev-lv/SM-ReservationService/internal/integrations/listingservice"
	"github.com/avdeev-lv/SM-ReservationService/internal/service/status/models"
)

// Service сервис бейджей доступности
// Оба эндпоинта (карточка листинга и карточка мастера) считают статус
// через один общий вычислитель, который и переcчитывает их по таймеру
type Service struct {
	listingClient ListingServiceClient
	resolver      StatusResolver
	logger        Logger
}

// NewService создает новый экземпляр сервиса статусов
func NewService(listingClient ListingServiceClient, resolver StatusResolver, logger Logger) *Service {
	return &Service{
		listingClient: listingClient,
		resolver:      resolver,
		logger:        logger,
	}
}

// GetListingStatus возвращает бейдж доступности для карточки листинга
func (s *Service) GetListingStatus(ctx context.Context, listingID int64) (*models.StatusResponse, error) {
	listing, err := s.fetchListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("listing:%d", listingID)
	return s.resolve(key, listing)
}

// GetProviderStatus возвращает бейдж доступности для карточки мастера
// Мастера работают по расписанию заведения, поэтому статус совпадает с
// листингом, но отслеживается под собственным ключом
func (s *Service) GetProviderStatus(ctx context.Context, listingID, providerID int64) (*models.StatusResponse, error) {
	listing, err := s.fetchListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if listing.FindEmployee(providerID) == nil {
		s.logger.Warn("GetProviderStatus: provider id=%d not in listing=%d", providerID, listingID)
		return nil, ErrProviderNotFound
	}

	key := fmt.Sprintf("listing:%d:provider:%d", listingID, providerID)
	return s.resolve(key, listing)
}

func (s *Service) fetchListing(ctx context.Context, listingID int64) (*listingClient.Listing, error) {
	listing, err := s.listingClient.GetListing(ctx, listingID)
	if err != nil {
		if errors.Is(err, listingClient.ErrListingNotFound) {
			return nil, ErrListingNotFound
		}
		s.logger.Error("fetchListing: failed to fetch listing id=%d: %v", listingID, err)
		return nil, fmt.Errorf("%w: %v", ErrListingUnavailable, err)
	}
	return listing, nil
}

func (s *Service) resolve(key string, listing *listingClient.Listing) (*models.StatusResponse, error) {
	week, err := listing.WeekSchedule()
	if err != nil {
		s.logger.Error("resolve: listing id=%d has malformed store hours: %v", listing.ID, err)
		return nil, fmt.Errorf("%w: malformed store hours: %v", ErrInternal, err)
	}

	availabilityStatus, err := s.resolver.Resolve(key, week)
	if err != nil {
		s.logger.Error("resolve: failed to compute status for %s: %v", key, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainStatus(availabilityStatus), nil
}
