package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
	"github.com/avdeev-lv/SM-ReservationService/pkg/dbmetrics"
	"github.com/avdeev-lv/SM-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с отправленными бронированиями
// Черновики сюда не попадают - записывается только результат submit
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование вместе с составом услуг
// Вызывается внутри транзакции submit: если в контексте есть активная
// транзакция, обе вставки выполняются в ней
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"user_id",
			"listing_id",
			"business_name",
			"provider_id",
			"provider_name",
			"reservation_date",
			"start_time",
			"note",
			"total_price",
			"status",
		).
		Values(
			reservation.UserID,
			reservation.ListingID,
			reservation.BusinessName,
			reservation.ProviderID,
			reservation.ProviderName,
			reservation.Date,
			reservation.StartTime,
			reservation.Note,
			reservation.TotalPrice,
			reservation.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	// Состав услуг с сохранением порядка выбора
	for position, service := range reservation.Services {
		query, args, err := psqlbuilder.Insert("reservation_services").
			Columns(
				"reservation_id",
				"service_id",
				"service_name",
				"price",
				"position",
			).
			Values(
				reservation.ID,
				service.ServiceID,
				service.ServiceName,
				service.Price,
				position,
			).
			ToSql()

		if err != nil {
			return nil, fmt.Errorf("%w: Create - build service insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - execute service insert: %v", ErrExecQuery, err)
		}
	}

	return reservation, nil
}

// GetByID получает бронирование по ID вместе с составом услуг
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := reservationSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.ListingID,
		&reservation.BusinessName,
		&reservation.ProviderID,
		&reservation.ProviderName,
		&reservation.Date,
		&reservation.StartTime,
		&reservation.Note,
		&reservation.TotalPrice,
		&reservation.Status,
		&reservation.CancellationReason,
		&reservation.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	if err := r.loadServices(ctx, executor, []*domain.Reservation{&reservation}); err != nil {
		return nil, err
	}

	return &reservation, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := reservationSelect().
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("reservation_date DESC, start_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := r.scanReservations(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadServices(ctx, executor, reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelledByUser).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// reservationSelect общий SELECT по таблице reservations
func reservationSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"user_id",
		"listing_id",
		"business_name",
		"provider_id",
		"provider_name",
		"reservation_date",
		"start_time",
		"note",
		"total_price",
		"status",
		"cancellation_reason",
		"cancelled_at",
		"created_at",
		"updated_at",
	).From("reservations")
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var reservation domain.Reservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&reservation.ID,
			&reservation.UserID,
			&reservation.ListingID,
			&reservation.BusinessName,
			&reservation.ProviderID,
			&reservation.ProviderName,
			&reservation.Date,
			&reservation.StartTime,
			&reservation.Note,
			&reservation.TotalPrice,
			&reservation.Status,
			&reservation.CancellationReason,
			&reservation.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		reservation.CreatedAt = createdAt.Time
		reservation.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// loadServices подгружает состав услуг для набора бронирований
func (r *Repository) loadServices(ctx context.Context, executor DBExecutor, reservations []*domain.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	ids := make([]int64, len(reservations))
	byID := make(map[int64]*domain.Reservation, len(reservations))
	for i, reservation := range reservations {
		ids[i] = reservation.ID
		byID[reservation.ID] = reservation
		reservation.Services = make([]domain.ReservationService, 0)
	}

	query, args, err := psqlbuilder.Select(
		"reservation_id",
		"service_id",
		"service_name",
		"price",
	).
		From("reservation_services").
		Where(squirrel.Eq{"reservation_id": ids}).
		OrderBy("reservation_id ASC, position ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var reservationID int64
		var service domain.ReservationService

		if err := rows.Scan(&reservationID, &service.ServiceID, &service.ServiceName, &service.Price); err != nil {
			return fmt.Errorf("%w: loadServices - scan row: %v", ErrScanRow, err)
		}

		if reservation, ok := byID[reservationID]; ok {
			reservation.Services = append(reservation.Services, service)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadServices - rows error: %v", ErrScanRow, err)
	}

	return nil
}
