package user

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

// pgUniqueViolation код нарушения уникального ограничения PostgreSQL
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с пользователями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает пользователя. Нарушение уникальности email возвращается
// как ErrEmailTaken: ограничение БД является источником истины, проверка
// на уровне приложения лишь быстрый путь.
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("name", "email", "password_hash", "role", "phone").
		Values(user.Name, user.Email, user.PasswordHash, user.Role, user.Phone).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return user, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail получает пользователя по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "email", "password_hash", "role", "phone", "created_at", "updated_at",
	).
		From("users").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %w", ErrBuildQuery, err)
	}

	var user domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Phone,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan user: %w", ErrScanRow, err)
	}

	return &user, nil
}

// GetCounts получает агрегаты по связанным сущностям пользователя
func (r *Repository) GetCounts(ctx context.Context, userID int64) (*domain.UserCounts, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"(SELECT COUNT(*) FROM businesses WHERE owner_id = u.id) AS owned_businesses",
		"(SELECT COUNT(*) FROM bookings WHERE user_id = u.id) AS bookings",
		"(SELECT COUNT(*) FROM reviews WHERE user_id = u.id) AS reviews",
	).
		From("users u").
		Where(squirrel.Eq{"u.id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCounts - build select query: %w", ErrBuildQuery, err)
	}

	var counts domain.UserCounts
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&counts.OwnedBusinesses,
		&counts.Bookings,
		&counts.Reviews,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCounts - scan counts: %w", ErrScanRow, err)
	}

	return &counts, nil
}

// List получает пользователей с фильтрацией по роли и поиском по имени/email
func (r *Repository) List(ctx context.Context, filter domain.UsersFilter) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id", "name", "email", "password_hash", "role", "phone", "created_at", "updated_at",
	).
		From("users").
		OrderBy("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset)

	selectBuilder = applyUsersFilter(selectBuilder, filter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.Phone,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return users, nil
}

// Count считает пользователей, подходящих под фильтр
func (r *Repository) Count(ctx context.Context, filter domain.UsersFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("users")
	selectBuilder = applyUsersFilter(selectBuilder, filter)

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

// CountByRole считает пользователей в разрезе ролей
func (r *Repository) CountByRole(ctx context.Context) (map[domain.UserRole]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("role", "COUNT(*)").
		From("users").
		GroupBy("role").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByRole - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByRole - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	stats := make(map[domain.UserRole]int64)
	for rows.Next() {
		var role domain.UserRole
		var count int64
		if err := rows.Scan(&role, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByRole - scan row: %w", ErrScanRow, err)
		}
		stats[role] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByRole - rows error: %w", ErrScanRow, err)
	}

	return stats, nil
}

// Delete удаляет пользователя. Связанные бизнесы, бронирования, платежи и
// отзывы удаляются каскадно внешними ключами.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// applyUsersFilter добавляет условия фильтра к select builder'у.
// Поисковая подстрока передается связанным аргументом, не интерполяцией.
func applyUsersFilter(b squirrel.SelectBuilder, filter domain.UsersFilter) squirrel.SelectBuilder {
	if filter.Role != nil {
		b = b.Where(squirrel.Eq{"role": *filter.Role})
	}

	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"email": pattern},
		})
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
