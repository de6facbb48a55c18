package stats

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	CountByRole(ctx context.Context) (map[domain.UserRole]int64, error)
}

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	Count(ctx context.Context) (int64, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error)
}

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Count(ctx context.Context, filter domain.ReviewsFilter) (int64, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	SumPaid(ctx context.Context) (float64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
