package payments

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	List(ctx context.Context, filter domain.PaymentsFilter) ([]*domain.Payment, error)
	Count(ctx context.Context, filter domain.PaymentsFilter) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
