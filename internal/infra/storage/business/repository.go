package business

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/pkg/dbmetrics"
	"github.com/washify/marketplace-service/pkg/psqlbuilder"
)

// haversineExpr расстояние по дуге большого круга в километрах между точкой
// запроса и координатами бизнеса. Та же форма (через acos), что и в
// domain.HaversineKm. Все координаты передаются связанными аргументами,
// никакой интерполяции пользовательского ввода в SQL.
const haversineExpr = "(6371 * acos(" +
	"cos(radians(?)) * cos(radians(b.lat)) * cos(radians(b.lng) - radians(?)) + " +
	"sin(radians(?)) * sin(radians(b.lat))))"

// Repository репозиторий для работы с бизнесами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бизнес
func (r *Repository) Create(ctx context.Context, business *domain.Business) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("businesses").
		Columns("name", "address", "lat", "lng", "owner_id").
		Values(business.Name, business.Address, business.Lat, business.Lng, business.OwnerID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&business.ID,
		&business.CreatedAt,
		&business.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return business, nil
}

// GetByID получает бизнес по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "address", "lat", "lng", "owner_id", "created_at", "updated_at",
	).
		From("businesses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var business domain.Business
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&business.ID,
		&business.Name,
		&business.Address,
		&business.Lat,
		&business.Lng,
		&business.OwnerID,
		&business.CreatedAt,
		&business.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan business: %w", ErrScanRow, err)
	}

	return &business, nil
}

// ExistsSameNameNearby проверяет, есть ли бизнес с таким же именем в радиусе
// radiusKm от точки. Используется как защита от дублирующих объявлений.
func (r *Repository) ExistsSameNameNearby(ctx context.Context, name string, lat, lng, radiusKm float64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("businesses b").
		Where(squirrel.Eq{"b.name": name}).
		Where(squirrel.Expr(haversineExpr+" <= ?", lat, lng, lat, radiusKm)).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsSameNameNearby - build select query: %w", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsSameNameNearby - scan: %w", ErrScanRow, err)
	}

	return true, nil
}

// Search получает бизнесы с геофильтром и/или текстовым поиском.
// При заданных координатах фильтрует по расстоянию ≤ RadiusKm и сортирует
// по возрастанию расстояния, без координат по дате создания (сначала новые).
// Возвращает бизнесы с карточкой владельца и числом бронирований; услуги
// присоединяются на уровне use case.
func (r *Repository) Search(ctx context.Context, filter domain.BusinessSearchFilter) ([]*domain.BusinessDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"b.id", "b.name", "b.address", "b.lat", "b.lng", "b.owner_id", "b.created_at", "b.updated_at",
		"u.id", "u.name", "u.email", "u.phone",
		"(SELECT COUNT(*) FROM bookings bk WHERE bk.business_id = b.id) AS booking_count",
	).
		From("businesses b").
		Join("users u ON u.id = b.owner_id").
		Limit(filter.Limit).
		Offset(filter.Offset)

	withDistance := filter.HasCoordinates()
	if withDistance {
		selectBuilder = selectBuilder.
			Column(squirrel.Expr(haversineExpr+" AS distance", filter.Lat, filter.Lng, filter.Lat)).
			Where(squirrel.Expr(haversineExpr+" <= ?", filter.Lat, filter.Lng, filter.Lat, filter.RadiusKm)).
			OrderBy("distance ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("b.created_at DESC")
	}

	selectBuilder = applySearchText(selectBuilder, filter.Search)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	results := make([]*domain.BusinessDetails, 0)
	for rows.Next() {
		var details domain.BusinessDetails

		dest := []interface{}{
			&details.ID,
			&details.Name,
			&details.Address,
			&details.Lat,
			&details.Lng,
			&details.OwnerID,
			&details.CreatedAt,
			&details.UpdatedAt,
			&details.Owner.ID,
			&details.Owner.Name,
			&details.Owner.Email,
			&details.Owner.Phone,
			&details.BookingCount,
		}

		var distance float64
		if withDistance {
			dest = append(dest, &distance)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: Search - scan row: %w", ErrScanRow, err)
		}

		if withDistance {
			details.DistanceKm = &distance
		}

		details.Services = make([]domain.Service, 0)
		results = append(results, &details)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Search - rows error: %w", ErrScanRow, err)
	}

	return results, nil
}

// CountSearch считает бизнесы, подходящие под фильтр поиска
func (r *Repository) CountSearch(ctx context.Context, filter domain.BusinessSearchFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("businesses b")

	if filter.HasCoordinates() {
		selectBuilder = selectBuilder.
			Where(squirrel.Expr(haversineExpr+" <= ?", filter.Lat, filter.Lng, filter.Lat, filter.RadiusKm))
	}

	selectBuilder = applySearchText(selectBuilder, filter.Search)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountSearch - build select query: %w", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: CountSearch - scan total: %w", ErrScanRow, err)
	}

	return total, nil
}

// Count считает все бизнесы (для статистики)
func (r *Repository) Count(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("businesses").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %w", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: Count - scan total: %w", ErrScanRow, err)
	}

	return total, nil
}

// applySearchText добавляет регистронезависимый поиск подстроки по имени
// и адресу. Шаблон ILIKE уходит связанным аргументом.
func applySearchText(b squirrel.SelectBuilder, search *string) squirrel.SelectBuilder {
	if search == nil || *search == "" {
		return b
	}

	pattern := "%" + *search + "%"
	return b.Where(squirrel.Or{
		squirrel.ILike{"b.name": pattern},
		squirrel.ILike{"b.address": pattern},
	})
}
