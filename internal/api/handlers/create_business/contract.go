package create_business

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/internal/service/businesses"
)

// BusinessesService интерфейс сервиса бизнесов
type BusinessesService interface {
	Create(ctx context.Context, req *businesses.CreateRequest) (*domain.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
