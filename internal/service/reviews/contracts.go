package reviews

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	List(ctx context.Context, filter domain.ReviewsFilter) ([]*domain.ReviewDetails, error)
	Count(ctx context.Context, filter domain.ReviewsFilter) (int64, error)
	RatingSummary(ctx context.Context, businessID int64) (*domain.RatingSummary, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
