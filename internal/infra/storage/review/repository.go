package review

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

// Repository репозиторий для работы с отзывами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает отзыв. Нарушение уникальности booking_id возвращается
// как ErrReviewExists.
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("user_id", "booking_id", "rating", "comment").
		Values(
			review.UserID,
			review.BookingID,
			review.Rating,
			review.Comment,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&review.ID,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrReviewExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return review, nil
}

// GetByBookingID получает отзыв по ID бронирования
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "user_id", "booking_id", "rating", "comment", "created_at", "updated_at",
	).
		From("reviews").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %w", ErrBuildQuery, err)
	}

	var review domain.Review
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&review.ID,
		&review.UserID,
		&review.BookingID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan review: %w", ErrScanRow, err)
	}

	return &review, nil
}

// List получает отзывы с фильтрацией, с карточками автора, услуги и бизнеса.
// Связь с бизнесом идет через бронирование. Сначала новые.
func (r *Repository) List(ctx context.Context, filter domain.ReviewsFilter) ([]*domain.ReviewDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"rv.id", "rv.user_id", "rv.booking_id", "rv.rating", "rv.comment",
		"rv.created_at", "rv.updated_at",
		"u.id", "u.name",
		"s.id", "s.name", "s.description", "s.price", "s.duration_minutes", "s.tier",
		"b.id", "b.name", "b.address", "b.lat", "b.lng",
	).
		From("reviews rv").
		Join("users u ON u.id = rv.user_id").
		Join("bookings bk ON bk.id = rv.booking_id").
		Join("services s ON s.id = bk.service_id").
		Join("businesses b ON b.id = bk.business_id").
		OrderBy("rv.created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset)

	selectBuilder = applyReviewsFilter(selectBuilder, filter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	results := make([]*domain.ReviewDetails, 0)
	for rows.Next() {
		var details domain.ReviewDetails
		err := rows.Scan(
			&details.ID,
			&details.UserID,
			&details.BookingID,
			&details.Rating,
			&details.Comment,
			&details.CreatedAt,
			&details.UpdatedAt,
			&details.Author.ID,
			&details.Author.Name,
			&details.Service.ID,
			&details.Service.Name,
			&details.Service.Description,
			&details.Service.Price,
			&details.Service.DurationMinutes,
			&details.Service.Tier,
			&details.Business.ID,
			&details.Business.Name,
			&details.Business.Address,
			&details.Business.Lat,
			&details.Business.Lng,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		results = append(results, &details)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return results, nil
}

// Count считает отзывы, подходящие под фильтр
func (r *Repository) Count(ctx context.Context, filter domain.ReviewsFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("reviews rv").
		Join("bookings bk ON bk.id = rv.booking_id")
	selectBuilder = applyReviewsFilter(selectBuilder, filter)

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

// RatingSummary возвращает средний рейтинг и число отзывов бизнеса.
// Среднее округляется до одного знака на стороне БД.
func (r *Repository) RatingSummary(ctx context.Context, businessID int64) (*domain.RatingSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COALESCE(ROUND(AVG(rv.rating)::numeric, 1), 0)",
		"COUNT(rv.id)",
	).
		From("reviews rv").
		Join("bookings bk ON bk.id = rv.booking_id").
		Where(squirrel.Eq{"bk.business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: RatingSummary - build select query: %w", ErrBuildQuery, err)
	}

	var summary domain.RatingSummary
	err = executor.QueryRowContext(ctx, query, args...).Scan(&summary.Average, &summary.Count)
	if err != nil {
		return nil, fmt.Errorf("%w: RatingSummary - scan summary: %w", ErrScanRow, err)
	}

	return &summary, nil
}

func applyReviewsFilter(b squirrel.SelectBuilder, filter domain.ReviewsFilter) squirrel.SelectBuilder {
	if filter.BusinessID != nil {
		b = b.Where(squirrel.Eq{"bk.business_id": *filter.BusinessID})
	}
	if filter.UserID != nil {
		b = b.Where(squirrel.Eq{"rv.user_id": *filter.UserID})
	}
	if filter.MinRating > 0 {
		b = b.Where(squirrel.GtOrEq{"rv.rating": filter.MinRating})
	}
	if filter.MaxRating > 0 {
		b = b.Where(squirrel.LtOrEq{"rv.rating": filter.MaxRating})
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
