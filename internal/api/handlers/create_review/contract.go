package create_review

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
	createReview "github.com/washify/marketplace-service/internal/usecase/create_review"
)

// CreateReviewUseCase интерфейс use case создания отзыва
type CreateReviewUseCase interface {
	Execute(ctx context.Context, req *createReview.Request) (*domain.Review, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
