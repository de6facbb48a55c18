package list_bookings

import (
	"net/http"
	"time"

	"github.com/washify/marketplace-service/internal/api/handlers"
	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/internal/service/bookings"
)

// UserResponse карточка пользователя бронирования
type UserResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// BusinessResponse карточка бизнеса бронирования
type BusinessResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// ServiceResponse карточка услуги бронирования
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Tier            string  `json:"tier"`
}

// PaymentResponse карточка платежа бронирования
type PaymentResponse struct {
	ID       int64      `json:"id"`
	Amount   float64    `json:"amount"`
	Currency string     `json:"currency"`
	Status   string     `json:"status"`
	Provider string     `json:"provider"`
	PaidAt   *time.Time `json:"paidAt,omitempty"`
}

// ReviewResponse карточка отзыва бронирования
type ReviewResponse struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingResponse карточка бронирования в списке
type BookingResponse struct {
	ID          int64            `json:"id"`
	ScheduledAt time.Time        `json:"scheduledAt"`
	Status      string           `json:"status"`
	Notes       *string          `json:"notes,omitempty"`
	Photos      []string         `json:"photos"`
	User        UserResponse     `json:"user"`
	Business    BusinessResponse `json:"business"`
	Service     ServiceResponse  `json:"service"`
	Payment     *PaymentResponse `json:"payment,omitempty"`
	Review      *ReviewResponse  `json:"review,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// ListBookingsResponse тело ответа списка бронирований
type ListBookingsResponse struct {
	Bookings   []BookingResponse   `json:"bookings"`
	Pagination handlers.Pagination `json:"pagination"`
}

// FromListResult конвертирует результат сервиса в ответ
func FromListResult(result *bookings.ListResult, limit, offset uint64) ListBookingsResponse {
	list := make([]BookingResponse, 0, len(result.Bookings))
	for _, booking := range result.Bookings {
		resp := BookingResponse{
			ID:          booking.ID,
			ScheduledAt: booking.ScheduledAt,
			Status:      string(booking.Status),
			Notes:       booking.Notes,
			Photos:      booking.Photos,
			User: UserResponse{
				ID:    booking.User.ID,
				Name:  booking.User.Name,
				Email: booking.User.Email,
				Phone: booking.User.Phone,
			},
			Business: BusinessResponse{
				ID:      booking.Business.ID,
				Name:    booking.Business.Name,
				Address: booking.Business.Address,
				Lat:     booking.Business.Lat,
				Lng:     booking.Business.Lng,
			},
			Service: ServiceResponse{
				ID:              booking.Service.ID,
				Name:            booking.Service.Name,
				Description:     booking.Service.Description,
				Price:           booking.Service.Price,
				DurationMinutes: booking.Service.DurationMinutes,
				Tier:            string(booking.Service.Tier),
			},
			CreatedAt: booking.CreatedAt,
		}
		if resp.Photos == nil {
			resp.Photos = []string{}
		}
		if booking.Payment != nil {
			resp.Payment = &PaymentResponse{
				ID:       booking.Payment.ID,
				Amount:   booking.Payment.Amount,
				Currency: booking.Payment.Currency,
				Status:   string(booking.Payment.Status),
				Provider: booking.Payment.Provider,
				PaidAt:   booking.Payment.PaidAt,
			}
		}
		if booking.Review != nil {
			resp.Review = &ReviewResponse{
				ID:        booking.Review.ID,
				Rating:    booking.Review.Rating,
				Comment:   booking.Review.Comment,
				CreatedAt: booking.Review.CreatedAt,
			}
		}
		list = append(list, resp)
	}

	return ListBookingsResponse{
		Bookings:   list,
		Pagination: handlers.NewPagination(result.Total, limit, offset),
	}
}

// ParseFilter читает фильтр бронирований из query-параметров
func ParseFilter(r *http.Request, limit, offset uint64) (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{Limit: limit, Offset: offset}

	userID, err := handlers.ParseInt64Param(r, "userId")
	if err != nil {
		return filter, err
	}
	filter.UserID = userID

	businessID, err := handlers.ParseInt64Param(r, "businessId")
	if err != nil {
		return filter, err
	}
	filter.BusinessID = businessID

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		filter.Status = &status
	}

	return filter, nil
}
