package service

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

// tierOrderExpr сортировка tier'ов в доменном порядке BASIC → PREMIUM → LUXURY
// (алфавитная сортировка дала бы BASIC, LUXURY, PREMIUM)
const tierOrderExpr = "CASE s.tier WHEN 'BASIC' THEN 1 WHEN 'PREMIUM' THEN 2 WHEN 'LUXURY' THEN 3 END"

// Repository репозиторий для работы с услугами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает услугу. Нарушение уникальности (business_id, name)
// возвращается как ErrDuplicateName.
func (r *Repository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("business_id", "name", "description", "price", "duration_minutes", "tier").
		Values(
			service.BusinessID,
			service.Name,
			service.Description,
			service.Price,
			service.DurationMinutes,
			service.Tier,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.CreatedAt,
		&service.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return service, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "business_id", "name", "description", "price", "duration_minutes", "tier",
		"created_at", "updated_at",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var service domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.BusinessID,
		&service.Name,
		&service.Description,
		&service.Price,
		&service.DurationMinutes,
		&service.Tier,
		&service.CreatedAt,
		&service.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %w", ErrScanRow, err)
	}

	return &service, nil
}

// ExistsByBusinessAndName проверяет наличие услуги с таким именем у бизнеса.
// Быстрый путь перед вставкой; источником истины остается уникальный индекс.
func (r *Repository) ExistsByBusinessAndName(ctx context.Context, businessID int64, name string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("services").
		Where(squirrel.Eq{"business_id": businessID, "name": name}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByBusinessAndName - build select query: %w", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByBusinessAndName - scan: %w", ErrScanRow, err)
	}

	return true, nil
}

// List получает услуги каталога с фильтрацией, с карточкой бизнеса и числом
// бронирований. Сортировка: tier (BASIC → LUXURY), затем цена по возрастанию.
func (r *Repository) List(ctx context.Context, filter domain.ServicesFilter) ([]*domain.ServiceDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"s.id", "s.business_id", "s.name", "s.description", "s.price", "s.duration_minutes", "s.tier",
		"s.created_at", "s.updated_at",
		"b.id", "b.name", "b.address", "b.lat", "b.lng",
		"(SELECT COUNT(*) FROM bookings bk WHERE bk.service_id = s.id) AS booking_count",
	).
		From("services s").
		Join("businesses b ON b.id = s.business_id").
		OrderBy(tierOrderExpr, "s.price ASC").
		Limit(filter.Limit).
		Offset(filter.Offset)

	selectBuilder = applyServicesFilter(selectBuilder, filter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	results := make([]*domain.ServiceDetails, 0)
	for rows.Next() {
		var details domain.ServiceDetails
		err := rows.Scan(
			&details.ID,
			&details.BusinessID,
			&details.Name,
			&details.Description,
			&details.Price,
			&details.DurationMinutes,
			&details.Tier,
			&details.CreatedAt,
			&details.UpdatedAt,
			&details.Business.ID,
			&details.Business.Name,
			&details.Business.Address,
			&details.Business.Lat,
			&details.Business.Lng,
			&details.BookingCount,
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

// Count считает услуги, подходящие под фильтр
func (r *Repository) Count(ctx context.Context, filter domain.ServicesFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("services s")
	selectBuilder = applyServicesFilter(selectBuilder, filter)

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

// ListByBusinessIDs получает услуги указанных бизнесов, сгруппированные по
// бизнесу и отсортированные по цене. Используется для сборки выдачи поиска.
func (r *Repository) ListByBusinessIDs(ctx context.Context, businessIDs []int64) (map[int64][]domain.Service, error) {
	result := make(map[int64][]domain.Service)
	if len(businessIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "business_id", "name", "description", "price", "duration_minutes", "tier",
		"created_at", "updated_at",
	).
		From("services").
		Where(squirrel.Eq{"business_id": businessIDs}).
		OrderBy("price ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusinessIDs - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusinessIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var service domain.Service
		err := rows.Scan(
			&service.ID,
			&service.BusinessID,
			&service.Name,
			&service.Description,
			&service.Price,
			&service.DurationMinutes,
			&service.Tier,
			&service.CreatedAt,
			&service.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBusinessIDs - scan row: %w", ErrScanRow, err)
		}
		result[service.BusinessID] = append(result[service.BusinessID], service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBusinessIDs - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

func applyServicesFilter(b squirrel.SelectBuilder, filter domain.ServicesFilter) squirrel.SelectBuilder {
	if filter.BusinessID != nil {
		b = b.Where(squirrel.Eq{"s.business_id": *filter.BusinessID})
	}
	if filter.Tier != nil {
		b = b.Where(squirrel.Eq{"s.tier": *filter.Tier})
	}
	if filter.MinPrice != nil {
		b = b.Where(squirrel.GtOrEq{"s.price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		b = b.Where(squirrel.LtOrEq{"s.price": *filter.MaxPrice})
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
