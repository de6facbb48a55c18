package update_booking_status

import (
	"context"

	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/internal/service/bookings"
)

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	UpdateStatus(ctx context.Context, req *bookings.UpdateStatusRequest) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
