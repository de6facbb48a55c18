package create_payment

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
	createPayment "github.com/washify/marketplace-service/internal/usecase/create_payment"
)

// CreatePaymentUseCase интерфейс use case создания платежа
type CreatePaymentUseCase interface {
	Execute(ctx context.Context, req *createPayment.Request) (*domain.Payment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
