package delete_user

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
)

// UsersService интерфейс сервиса пользователей
type UsersService interface {
	Delete(ctx context.Context, id, actorID int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
