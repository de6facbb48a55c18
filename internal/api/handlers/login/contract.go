package login

import (
	"context"

	"github.com/washify/marketplace-service/internal/service/auth"
)

// AuthService интерфейс сервиса аутентификации
type AuthService interface {
	Login(ctx context.Context, email, password string) (*auth.AuthResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
