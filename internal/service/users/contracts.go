package users

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, filter domain.UsersFilter) ([]*domain.User, error)
	Count(ctx context.Context, filter domain.UsersFilter) (int64, error)
	CountByRole(ctx context.Context) (map[domain.UserRole]int64, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
