package list_reviews

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/internal/service/reviews"
)

// ReviewsService интерфейс сервиса отзывов
type ReviewsService interface {
	List(ctx context.Context, filter domain.ReviewsFilter) (*reviews.ListResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
