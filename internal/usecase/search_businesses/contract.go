package search_businesses

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	Search(ctx context.Context, filter domain.BusinessSearchFilter) ([]*domain.BusinessDetails, error)
	CountSearch(ctx context.Context, filter domain.BusinessSearchFilter) (int64, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	ListByBusinessIDs(ctx context.Context, businessIDs []int64) (map[int64][]domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
