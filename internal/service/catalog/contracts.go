package catalog

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	List(ctx context.Context, filter domain.ServicesFilter) ([]*domain.ServiceDetails, error)
	Count(ctx context.Context, filter domain.ServicesFilter) (int64, error)
	ExistsByBusinessAndName(ctx context.Context, businessID int64, name string) (bool, error)
}

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
