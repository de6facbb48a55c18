package list_payments

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/internal/service/payments"
)

// PaymentsService интерфейс сервиса платежей
type PaymentsService interface {
	List(ctx context.Context, filter domain.PaymentsFilter) (*payments.ListResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
