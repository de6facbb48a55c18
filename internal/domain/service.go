package domain

import "time"

// ServiceTier quality/price class of a service
type ServiceTier string

const (
	TierBasic   ServiceTier = "BASIC"
	TierPremium ServiceTier = "PREMIUM"
	TierLuxury  ServiceTier = "LUXURY"
)

// Valid returns true if the tier is one of the known tiers
func (t ServiceTier) Valid() bool {
	switch t {
	case TierBasic, TierPremium, TierLuxury:
		return true
	default:
		return false
	}
}

// Rank порядок сортировки tier'ов: BASIC < PREMIUM < LUXURY
func (t ServiceTier) Rank() int {
	switch t {
	case TierBasic:
		return 1
	case TierPremium:
		return 2
	case TierLuxury:
		return 3
	default:
		return 4
	}
}

// Service represents a service offered by a business
type Service struct {
	ID              int64
	BusinessID      int64
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Tier            ServiceTier

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServicesFilter фильтр каталога услуг
type ServicesFilter struct {
	BusinessID *int64
	Tier       *ServiceTier
	MinPrice   *float64
	MaxPrice   *float64
	Limit      uint64
	Offset     uint64
}

// ServiceDetails услуга с краткой карточкой бизнеса и числом бронирований
type ServiceDetails struct {
	Service
	Business     BusinessSummary
	BookingCount int64
}

// BusinessSummary краткая карточка бизнеса для вложенных ответов
type BusinessSummary struct {
	ID      int64
	Name    string
	Address string
	Lat     float64
	Lng     float64
}
