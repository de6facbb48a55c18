package auth

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetCounts(ctx context.Context, userID int64) (*domain.UserCounts, error)
}

// TokenSigner выпускает JWT для пользователя
type TokenSigner interface {
	Sign(userID int64, email, role string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
