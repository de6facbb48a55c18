package search_businesses

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
	searchBusinesses "github.com/washify/marketplace-service/internal/usecase/search_businesses"
)

// SearchBusinessesUseCase интерфейс use case поиска бизнесов
type SearchBusinessesUseCase interface {
	Execute(ctx context.Context, filter domain.BusinessSearchFilter) (*searchBusinesses.Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
