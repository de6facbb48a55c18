package list_payments

import (
	"net/http"
	"time"

	"github.com/washify/marketplace-service/internal/api/handlers"
	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/internal/service/payments"
)

// PaymentResponse карточка платежа в списке
type PaymentResponse struct {
	ID         int64      `json:"id"`
	BookingID  int64      `json:"bookingId"`
	Amount     float64    `json:"amount"`
	Currency   string     `json:"currency"`
	Status     string     `json:"status"`
	Provider   string     `json:"provider"`
	ProviderID *string    `json:"providerId,omitempty"`
	PaidAt     *time.Time `json:"paidAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ListPaymentsResponse тело ответа списка платежей
type ListPaymentsResponse struct {
	Payments   []PaymentResponse   `json:"payments"`
	Pagination handlers.Pagination `json:"pagination"`
}

// FromListResult конвертирует результат сервиса в ответ
func FromListResult(result *payments.ListResult, limit, offset uint64) ListPaymentsResponse {
	list := make([]PaymentResponse, 0, len(result.Payments))
	for _, payment := range result.Payments {
		list = append(list, PaymentResponse{
			ID:         payment.ID,
			BookingID:  payment.BookingID,
			Amount:     payment.Amount,
			Currency:   payment.Currency,
			Status:     string(payment.Status),
			Provider:   payment.Provider,
			ProviderID: payment.ProviderID,
			PaidAt:     payment.PaidAt,
			CreatedAt:  payment.CreatedAt,
		})
	}

	return ListPaymentsResponse{
		Payments:   list,
		Pagination: handlers.NewPagination(result.Total, limit, offset),
	}
}

// ParseFilter читает фильтр платежей из query-параметров
func ParseFilter(r *http.Request, limit, offset uint64) (domain.PaymentsFilter, error) {
	filter := domain.PaymentsFilter{Limit: limit, Offset: offset}

	bookingID, err := handlers.ParseInt64Param(r, "bookingId")
	if err != nil {
		return filter, err
	}
	filter.BookingID = bookingID

	businessID, err := handlers.ParseInt64Param(r, "businessId")
	if err != nil {
		return filter, err
	}
	filter.BusinessID = businessID

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.PaymentStatus(raw)
		filter.Status = &status
	}

	return filter, nil
}
