package create_booking

import (
	"time"

	"github.com/washify/marketplace-service/internal/domain"
)

// CreateBookingRequest тело запроса создания бронирования
type CreateBookingRequest struct {
	BusinessID  int64     `json:"businessId" validate:"required,gt=0"`
	ServiceID   int64     `json:"serviceId" validate:"required,gt=0"`
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
	Notes       *string   `json:"notes" validate:"omitempty,max=2000"`
	Photos      []string  `json:"photos" validate:"omitempty,dive,url"`
}

// BookingResponse тело ответа с созданным бронированием
type BookingResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	BusinessID  int64     `json:"businessId"`
	ServiceID   int64     `json:"serviceId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes,omitempty"`
	Photos      []string  `json:"photos"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromDomainBooking конвертирует доменное бронирование в ответ
func FromDomainBooking(booking *domain.Booking) BookingResponse {
	photos := booking.Photos
	if photos == nil {
		photos = []string{}
	}
	return BookingResponse{
		ID:          booking.ID,
		UserID:      booking.UserID,
		BusinessID:  booking.BusinessID,
		ServiceID:   booking.ServiceID,
		ScheduledAt: booking.ScheduledAt,
		Status:      string(booking.Status),
		Notes:       booking.Notes,
		Photos:      photos,
		CreatedAt:   booking.CreatedAt,
	}
}
