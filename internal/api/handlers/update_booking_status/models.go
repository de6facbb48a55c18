package update_booking_status

import (
	"time"

	"github.com/washify/marketplace-service/internal/domain"
)

// UpdateStatusRequest тело запроса смены статуса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
}

// BookingResponse тело ответа с обновленным бронированием
type BookingResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	BusinessID  int64     `json:"businessId"`
	ServiceID   int64     `json:"serviceId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Status      string    `json:"status"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromDomainBooking конвертирует доменное бронирование в ответ
func FromDomainBooking(booking *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          booking.ID,
		UserID:      booking.UserID,
		BusinessID:  booking.BusinessID,
		ServiceID:   booking.ServiceID,
		ScheduledAt: booking.ScheduledAt,
		Status:      string(booking.Status),
		UpdatedAt:   booking.UpdatedAt,
	}
}
