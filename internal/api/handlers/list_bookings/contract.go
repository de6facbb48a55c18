package list_bookings

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/internal/service/bookings"
)

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	List(ctx context.Context, filter domain.BookingsFilter) (*bookings.ListResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
