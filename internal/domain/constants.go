package domain

// Defaults for list endpoints
const (
	DefaultLimit     = 20
	DefaultListLimit = 10 // bookings list
	MaxLimit         = 100
)

// Geo search defaults
const (
	DefaultSearchRadiusKm = 10.0

	// DuplicateBusinessRadiusKm радиус, внутри которого бизнес с тем же
	// именем считается дублирующим объявлением
	DuplicateBusinessRadiusKm = 0.1
)

// DefaultCurrency валюта платежа по умолчанию
const DefaultCurrency = "USD"
