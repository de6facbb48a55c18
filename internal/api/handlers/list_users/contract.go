package list_users

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/internal/service/users"
)

// UsersService интерфейс сервиса пользователей
type UsersService interface {
	List(ctx context.Context, filter domain.UsersFilter) (*users.ListResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
