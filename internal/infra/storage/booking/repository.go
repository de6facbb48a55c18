package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/pkg/dbmetrics"
	"github.com/washify/marketplace-service/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование.
// Если в контексте передана активная транзакция, использует её.
// Нарушение частичного уникального индекса активного слота возвращается
// как ErrSlotTaken: индекс является источником истины при гонке двух
// одновременных бронирований, проверка HasActiveAt лишь быстрый путь.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("user_id", "business_id", "service_id", "scheduled_at", "status", "notes", "photos").
		Values(
			booking.UserID,
			booking.BusinessID,
			booking.ServiceID,
			booking.ScheduledAt,
			booking.Status,
			booking.Notes,
			pq.Array(booking.Photos),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "user_id", "business_id", "service_id", "scheduled_at", "status", "notes", "photos",
		"created_at", "updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var booking domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.BusinessID,
		&booking.ServiceID,
		&booking.ScheduledAt,
		&booking.Status,
		&booking.Notes,
		pq.Array(&booking.Photos),
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return &booking, nil
}

// HasActiveAt проверяет, занят ли слот (business_id, scheduled_at) активным
// бронированием (PENDING или IN_PROGRESS). Внутри транзакции блокирует
// найденную строку FOR UPDATE.
func (r *Repository) HasActiveAt(ctx context.Context, businessID int64, scheduledAt time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{
			"business_id":  businessID,
			"scheduled_at": scheduledAt,
			"status":       domain.ActiveStatuses,
		}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveAt - build select query: %w", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveAt - scan: %w", ErrScanRow, err)
	}

	return true, nil
}

// List получает бронирования с фильтрацией по пользователю, бизнесу и
// статусу, с карточками связанных сущностей (платеж и отзыв опциональны).
// Сортировка по дате создания, сначала новые.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"bk.id", "bk.user_id", "bk.business_id", "bk.service_id", "bk.scheduled_at",
		"bk.status", "bk.notes", "bk.photos", "bk.created_at", "bk.updated_at",
		"u.id", "u.name", "u.email", "u.phone",
		"b.id", "b.name", "b.address", "b.lat", "b.lng",
		"s.id", "s.name", "s.description", "s.price", "s.duration_minutes", "s.tier",
		"p.id", "p.amount", "p.currency", "p.status", "p.provider", "p.paid_at",
		"rv.id", "rv.rating", "rv.comment", "rv.created_at",
	).
		From("bookings bk").
		Join("users u ON u.id = bk.user_id").
		Join("businesses b ON b.id = bk.business_id").
		Join("services s ON s.id = bk.service_id").
		LeftJoin("payments p ON p.booking_id = bk.id").
		LeftJoin("reviews rv ON rv.booking_id = bk.id").
		OrderBy("bk.created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset)

	selectBuilder = applyBookingsFilter(selectBuilder, filter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookingDetails(rows)
}

// Count считает бронирования, подходящие под фильтр
func (r *Repository) Count(ctx context.Context, filter domain.BookingsFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("bookings bk")
	selectBuilder = applyBookingsFilter(selectBuilder, filter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %w", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: Count - scan total: %w", ErrScanRow, err)
	}

	return total, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountByStatus считает бронирования в разрезе статусов (для статистики)
func (r *Repository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("bookings").
		GroupBy("status").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	stats := make(map[domain.BookingStatus]int64)
	for rows.Next() {
		var status domain.BookingStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatus - scan row: %w", ErrScanRow, err)
		}
		stats[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - rows error: %w", ErrScanRow, err)
	}

	return stats, nil
}

func applyBookingsFilter(b squirrel.SelectBuilder, filter domain.BookingsFilter) squirrel.SelectBuilder {
	if filter.UserID != nil {
		b = b.Where(squirrel.Eq{"bk.user_id": *filter.UserID})
	}
	if filter.BusinessID != nil {
		b = b.Where(squirrel.Eq{"bk.business_id": *filter.BusinessID})
	}
	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"bk.status": *filter.Status})
	}
	return b
}

// scanBookingDetails сканирует строки списка с LEFT JOIN платежей и отзывов
func scanBookingDetails(rows *sql.Rows) ([]*domain.BookingDetails, error) {
	results := make([]*domain.BookingDetails, 0)

	for rows.Next() {
		var details domain.BookingDetails

		var (
			paymentID       sql.NullInt64
			paymentAmount   sql.NullFloat64
			paymentCurrency sql.NullString
			paymentStatus   sql.NullString
			paymentProvider sql.NullString
			paymentPaidAt   sql.NullTime

			reviewID        sql.NullInt64
			reviewRating    sql.NullInt64
			reviewComment   sql.NullString
			reviewCreatedAt sql.NullTime
		)

		err := rows.Scan(
			&details.ID,
			&details.UserID,
			&details.BusinessID,
			&details.ServiceID,
			&details.ScheduledAt,
			&details.Status,
			&details.Notes,
			pq.Array(&details.Photos),
			&details.CreatedAt,
			&details.UpdatedAt,
			&details.User.ID,
			&details.User.Name,
			&details.User.Email,
			&details.User.Phone,
			&details.Business.ID,
			&details.Business.Name,
			&details.Business.Address,
			&details.Business.Lat,
			&details.Business.Lng,
			&details.Service.ID,
			&details.Service.Name,
			&details.Service.Description,
			&details.Service.Price,
			&details.Service.DurationMinutes,
			&details.Service.Tier,
			&paymentID,
			&paymentAmount,
			&paymentCurrency,
			&paymentStatus,
			&paymentProvider,
			&paymentPaidAt,
			&reviewID,
			&reviewRating,
			&reviewComment,
			&reviewCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookingDetails - scan row: %w", ErrScanRow, err)
		}

		if paymentID.Valid {
			payment := &domain.PaymentSummary{
				ID:       paymentID.Int64,
				Amount:   paymentAmount.Float64,
				Currency: paymentCurrency.String,
				Status:   domain.PaymentStatus(paymentStatus.String),
				Provider: paymentProvider.String,
			}
			if paymentPaidAt.Valid {
				payment.PaidAt = &paymentPaidAt.Time
			}
			details.Payment = payment
		}

		if reviewID.Valid {
			review := &domain.ReviewSummary{
				ID:        reviewID.Int64,
				Rating:    int(reviewRating.Int64),
				CreatedAt: reviewCreatedAt.Time,
			}
			if reviewComment.Valid {
				comment := reviewComment.String
				review.Comment = &comment
			}
			details.Review = review
		}

		results = append(results, &details)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookingDetails - rows error: %w", ErrScanRow, err)
	}

	return results, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
