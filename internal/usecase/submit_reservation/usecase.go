package submit_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
	"github.com/avdeev-lv/SM-ReservationService/internal/infra/draftstore"
	"github.com/avdeev-lv/SM-ReservationService/internal/integrations/checkoutservice"
	"github.com/avdeev-lv/SM-ReservationService/pkg/ptr"
)

// UseCase use case подтверждения бронирования: финальная валидация
// черновика, проверка сессии, сохранение и передача заказа в оплату
type UseCase struct {
	drafts          DraftStore
	reservationRepo ReservationRepository
	authClient      AuthServiceClient
	checkoutClient  CheckoutServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	drafts DraftStore,
	reservationRepo ReservationRepository,
	authClient AuthServiceClient,
	checkoutClient CheckoutServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		drafts:          drafts,
		reservationRepo: reservationRepo,
		authClient:      authClient,
		checkoutClient:  checkoutClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет подтверждение бронирования
// При любой ошибке черновик остается нетронутым, чтобы пользователь мог
// исправить данные и повторить. Уничтожается он только после успеха
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, *LoginRedirect, error) {
	uc.logger.Info("SubmitReservation: draft=%s, user=%d", req.DraftID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitReservation: validation failed: %v", err)
		return nil, nil, err
	}

	// 2. Загружаем черновик и проверяем владельца
	session, err := uc.drafts.Get(req.DraftID)
	if err != nil {
		if errors.Is(err, draftstore.ErrDraftNotFound) {
			return nil, nil, ErrDraftNotFound
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	draft := session.Draft
	if draft.UserID != req.UserID {
		uc.logger.Warn("SubmitReservation: user=%d is not the owner of draft=%s", req.UserID, req.DraftID)
		return nil, nil, ErrAccessDenied
	}

	// 3. Полная перевалидация черновика
	if err := validateDraftComplete(draft); err != nil {
		uc.logger.Warn("SubmitReservation: draft=%s is incomplete: %v", req.DraftID, err)
		return nil, nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateSlotStillBookable(draft, now); err != nil {
		uc.logger.Warn("SubmitReservation: draft=%s slot check failed: %v", req.DraftID, err)
		return nil, nil, err
	}

	// 4. Проверяем сессию пользователя
	authenticated, err := uc.authClient.IsAuthenticated(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("SubmitReservation: auth check failed for user=%d: %v", req.UserID, err)
		return nil, nil, fmt.Errorf("%w: auth check failed: %v", ErrInternal, err)
	}
	if !authenticated {
		// Черновик не трогаем: после входа пользователь начнет мастер заново
		uc.logger.Info("SubmitReservation: user=%d has no active session, redirecting to login", req.UserID)
		return nil, &LoginRedirect{LoginURL: uc.authClient.LoginURL()}, ErrUnauthenticated
	}

	// 5. Сохраняем бронирование в статусе ожидания оплаты
	reservation := buildReservation(draft)

	var created *domain.Reservation
	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = uc.reservationRepo.Create(ctx, reservation)
		return txErr
	})
	if err != nil {
		uc.logger.Error("SubmitReservation: failed to persist reservation for draft=%s: %v", req.DraftID, err)
		return nil, nil, fmt.Errorf("%w: failed to persist reservation: %v", ErrInternal, err)
	}

	// 6. Передаем заказ в сервис оплаты
	payload := buildCheckoutPayload(draft)
	if err := uc.checkoutClient.StartCheckout(ctx, payload); err != nil {
		if errors.Is(err, checkoutservice.ErrCheckoutRejected) {
			uc.logger.Warn("SubmitReservation: checkout rejected order for draft=%s: %v", req.DraftID, err)
			return nil, nil, fmt.Errorf("%w: %v", ErrCheckoutRejected, err)
		}
		uc.logger.Error("SubmitReservation: checkout handoff failed for draft=%s: %v", req.DraftID, err)
		return nil, nil, fmt.Errorf("%w: checkout handoff failed: %v", ErrInternal, err)
	}

	// 7. Заказ передан в оплату, черновик больше не нужен
	uc.drafts.Delete(req.DraftID)

	uc.logger.Info("SubmitReservation: draft=%s -> reservation=%d, total=%.2f",
		req.DraftID, created.ID, created.TotalPrice)

	return &Response{
		ReservationID: created.ID,
		ListingID:     created.ListingID,
		BusinessName:  created.BusinessName,
		Date:          created.Date.Format(domain.DateFormat),
		Time:          created.StartTime.String(),
		TotalPrice:    created.TotalPrice,
		Status:        string(created.Status),
	}, nil, nil
}

// buildReservation собирает доменную модель бронирования из черновика
func buildReservation(draft *domain.ReservationDraft) *domain.Reservation {
	services := make([]domain.ReservationService, len(draft.SelectedServices))
	for i, svc := range draft.SelectedServices {
		services[i] = domain.ReservationService{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Price:       svc.Price,
		}
	}

	var note *string
	if draft.Note != "" {
		note = ptr.Ptr(draft.Note)
	}

	return &domain.Reservation{
		UserID:       draft.UserID,
		ListingID:    draft.ListingID,
		BusinessName: draft.BusinessName,
		Services:     services,
		ProviderID:   draft.SelectedProvider.ID,
		ProviderName: draft.SelectedProvider.FullName,
		Date:         *draft.Date,
		StartTime:    draft.Time,
		Note:         note,
		TotalPrice:   draft.TotalPrice(),
		Status:       domain.StatusPendingPayment,
	}
}

// buildCheckoutPayload собирает плоский заказ для сервиса оплаты
func buildCheckoutPayload(draft *domain.ReservationDraft) *checkoutservice.Payload {
	services := make([]checkoutservice.PayloadService, len(draft.SelectedServices))
	for i, svc := range draft.SelectedServices {
		services[i] = checkoutservice.PayloadService{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Price:       svc.Price,
		}
	}

	return &checkoutservice.Payload{
		TotalPrice:   draft.TotalPrice(),
		Date:         draft.Date.Format(domain.DateFormat),
		Time:         draft.Time.String(),
		ListingID:    draft.ListingID,
		Services:     services,
		EmployeeID:   draft.SelectedProvider.ID,
		EmployeeName: draft.SelectedProvider.FullName,
		Note:         draft.Note,
		BusinessName: draft.BusinessName,
	}
}
