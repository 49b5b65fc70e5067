package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
	reservationRepo "github.com/avdeev-lv/SM-ReservationService/internal/infra/storage/reservation"
	"github.com/avdeev-lv/SM-ReservationService/internal/service/reservations/models"
)

// Service сервис истории бронирований пользователя
type Service struct {
	repo      ReservationRepository
	txManager TxManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(repo ReservationRepository, txManager TxManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetByID возвращает бронирование по ID с проверкой владельца
func (s *Service) GetByID(ctx context.Context, id, userID int64) (*models.ReservationResponse, error) {
	reservation, err := s.loadOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations возвращает бронирования пользователя,
// опционально отфильтрованные по статусу
func (s *Service) GetUserReservations(ctx context.Context, userID int64, statusFilter *string) ([]models.ReservationResponse, error) {
	var status *domain.ReservationStatus
	if statusFilter != nil {
		parsed := domain.ReservationStatus(*statusFilter)
		switch parsed {
		case domain.StatusPendingPayment, domain.StatusConfirmed, domain.StatusCancelledByUser:
			status = &parsed
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *statusFilter)
		}
	}

	items, err := s.repo.GetByUserID(ctx, userID, status)
	if err != nil {
		s.logger.Error("GetUserReservations: failed to load reservations for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainReservations(items), nil
}

// Cancel отменяет бронирование пользователя
// Отмена допустима только для активных бронирований
func (s *Service) Cancel(ctx context.Context, id, userID int64, reason string) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: user=%d cancelling reservation=%d", userID, id)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		reservation, err := s.loadOwned(ctx, id, userID)
		if err != nil {
			return err
		}

		if !reservation.CanBeCancelled() {
			s.logger.Warn("Cancel: reservation=%d has status %s, cannot cancel", id, reservation.Status)
			return ErrAlreadyCancelled
		}

		if err := s.repo.Cancel(ctx, id, reason); err != nil {
			s.logger.Error("Cancel: failed to cancel reservation=%d: %v", id, err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	reservation, err := s.loadOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: reservation=%d cancelled", id)
	return models.FromDomainReservation(reservation), nil
}

// loadOwned загружает бронирование и проверяет, что оно принадлежит пользователю
func (s *Service) loadOwned(ctx context.Context, id, userID int64) (*domain.Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("loadOwned: failed to load reservation=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if reservation.UserID != userID {
		s.logger.Warn("loadOwned: user=%d is not the owner of reservation=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return reservation, nil
}
