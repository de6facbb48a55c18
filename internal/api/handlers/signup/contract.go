package signup

import (
	"context"

	"github.com/washify/marketplace-service/internal/service/auth"
)

// AuthService интерфейс сервиса аутентификации
type AuthService interface {
	Signup(ctx context.Context, req *auth.SignupRequest) (*auth.AuthResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
