package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "PENDING"
	StatusInProgress BookingStatus = "IN_PROGRESS"
	StatusCompleted  BookingStatus = "COMPLETED"
	StatusCancelled  BookingStatus = "CANCELLED"
)

// Valid returns true if the status is one of the known statuses
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// ActiveStatuses статусы, при которых бронирование занимает слот
var ActiveStatuses = []BookingStatus{StatusPending, StatusInProgress}

// Booking represents a booking of a service at a business
type Booking struct {
	ID          int64
	UserID      int64
	BusinessID  int64
	ServiceID   int64
	ScheduledAt time.Time
	Status      BookingStatus
	Notes       *string
	Photos      []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking holds its time slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusInProgress
}

// CanTransitionTo проверяет допустимость перехода статуса.
// PENDING → IN_PROGRESS | CANCELLED, IN_PROGRESS → COMPLETED | CANCELLED.
// COMPLETED и CANCELLED терминальные.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusInProgress || next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// BookingsFilter фильтр выборки бронирований
type BookingsFilter struct {
	UserID     *int64
	BusinessID *int64
	Status     *BookingStatus
	Limit      uint64
	Offset     uint64
}

// BookingDetails бронирование с присоединенными карточками связанных сущностей
type BookingDetails struct {
	Booking
	User     UserSummary
	Business BusinessSummary
	Service  ServiceSummary
	Payment  *PaymentSummary
	Review   *ReviewSummary
}

// ServiceSummary краткая карточка услуги для вложенных ответов
type ServiceSummary struct {
	ID              int64
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Tier            ServiceTier
}

// PaymentSummary краткая карточка платежа для вложенных ответов
type PaymentSummary struct {
	ID       int64
	Amount   float64
	Currency string
	Status   PaymentStatus
	Provider string
	PaidAt   *time.Time
}

// ReviewSummary краткая карточка отзыва для вложенных ответов
type ReviewSummary struct {
	ID        int64
	Rating    int
	Comment   *string
	CreatedAt time.Time
}
