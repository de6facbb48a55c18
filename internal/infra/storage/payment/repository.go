package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/pkg/dbmetrics"
	"github.com/washify/marketplace-service/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

const paymentColumns = "p.id, p.booking_id, p.amount, p.currency, p.status, p.provider, p.provider_id, p.paid_at, p.created_at, p.updated_at"

// Repository репозиторий для работы с платежами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает платеж. Нарушение уникальности booking_id возвращается
// как ErrPaymentExists, индекс является источником истины при гонке.
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns("booking_id", "amount", "currency", "status", "provider", "provider_id", "paid_at").
		Values(
			payment.BookingID,
			payment.Amount,
			payment.Currency,
			payment.Status,
			payment.Provider,
			payment.ProviderID,
			payment.PaidAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&payment.ID,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrPaymentExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return payment, nil
}

// GetByBookingID получает платеж по ID бронирования
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns).
		From("payments p").
		Where(squirrel.Eq{"p.booking_id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %w", ErrBuildQuery, err)
	}

	var payment domain.Payment
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Currency,
		&payment.Status,
		&payment.Provider,
		&payment.ProviderID,
		&payment.PaidAt,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan payment: %w", ErrScanRow, err)
	}

	return &payment, nil
}

// List получает платежи с фильтрацией, сначала новые
func (r *Repository) List(ctx context.Context, filter domain.PaymentsFilter) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(paymentColumns).
		From("payments p").
		OrderBy("p.created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset)

	selectBuilder = applyPaymentsFilter(selectBuilder, filter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	results := make([]*domain.Payment, 0)
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.BookingID,
			&payment.Amount,
			&payment.Currency,
			&payment.Status,
			&payment.Provider,
			&payment.ProviderID,
			&payment.PaidAt,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		results = append(results, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return results, nil
}

// Count считает платежи, подходящие под фильтр
func (r *Repository) Count(ctx context.Context, filter domain.PaymentsFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("payments p")
	selectBuilder = applyPaymentsFilter(selectBuilder, filter)

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

// SumPaid возвращает сумму всех оплаченных платежей (для статистики)
func (r *Repository) SumPaid(ctx context.Context) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)").
		From("payments").
		Where(squirrel.Eq{"status": domain.PaymentPaid}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumPaid - build select query: %w", ErrBuildQuery, err)
	}

	var sum float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%w: SumPaid - scan sum: %w", ErrScanRow, err)
	}

	return sum, nil
}

// applyPaymentsFilter накладывает фильтр на выборку из "payments p".
// Фильтр по бизнесу требует джойна с бронированиями.
func applyPaymentsFilter(b squirrel.SelectBuilder, filter domain.PaymentsFilter) squirrel.SelectBuilder {
	if filter.BookingID != nil {
		b = b.Where(squirrel.Eq{"p.booking_id": *filter.BookingID})
	}
	if filter.BusinessID != nil {
		b = b.Join("bookings bk ON bk.id = p.booking_id").
			Where(squirrel.Eq{"bk.business_id": *filter.BusinessID})
	}
	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"p.status": *filter.Status})
	}
	return b
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
