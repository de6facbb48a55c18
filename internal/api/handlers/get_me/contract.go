package get_me

import (
	"context"

	"github.com/washify/marketplace-service/internal/service/auth"
)

// AuthService интерфейс сервиса аутентификации
type AuthService interface {
	Me(ctx context.Context, userID int64) (*auth.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
