package domain

import "time"

// PaymentStatus represents the settlement state of a payment
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

// Valid returns true if the status is one of the known statuses
func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentPaid
}

// ProviderCash провайдер наличной оплаты, расчёт проходит синхронно
const ProviderCash = "cash"

// Payment represents a payment linked one-to-one to a booking
type Payment struct {
	ID         int64
	BookingID  int64
	Amount     float64
	Currency   string
	Status     PaymentStatus
	Provider   string
	ProviderID *string
	PaidAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PaymentsFilter фильтр выборки платежей. BusinessID фильтрует
// по бизнесу связанного бронирования.
type PaymentsFilter struct {
	BookingID  *int64
	BusinessID *int64
	Status     *PaymentStatus
	Limit      uint64
	Offset     uint64
}
