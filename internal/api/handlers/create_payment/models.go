package create_payment

import (
	"time"

	"github.com/washify/marketplace-service/internal/domain"
)

// CreatePaymentRequest тело запроса создания платежа
type CreatePaymentRequest struct {
	BookingID int64   `json:"bookingId" validate:"required,gt=0"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Currency  string  `json:"currency" validate:"omitempty,len=3,uppercase"`
	Provider  string  `json:"provider" validate:"required,min=2,max=50"`
}

// PaymentResponse тело ответа с созданным платежом
type PaymentResponse struct {
	ID        int64      `json:"id"`
	BookingID int64      `json:"bookingId"`
	Amount    float64    `json:"amount"`
	Currency  string     `json:"currency"`
	Status    string     `json:"status"`
	Provider  string     `json:"provider"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// FromDomainPayment конвертирует доменный платеж в ответ
func FromDomainPayment(payment *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        payment.ID,
		BookingID: payment.BookingID,
		Amount:    payment.Amount,
		Currency:  payment.Currency,
		Status:    string(payment.Status),
		Provider:  payment.Provider,
		PaidAt:    payment.PaidAt,
		CreatedAt: payment.CreatedAt,
	}
}
