package create_service

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/internal/service/catalog"
)

// CatalogService интерфейс сервиса каталога услуг
type CatalogService interface {
	Create(ctx context.Context, req *catalog.CreateRequest) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
