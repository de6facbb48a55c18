package domain

import "time"

// Business represents a car wash business listing
type Business struct {
	ID      int64
	Name    string
	Address string
	Lat     float64
	Lng     float64
	OwnerID int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BusinessSearchFilter фильтр поиска бизнесов
type BusinessSearchFilter struct {
	Lat      float64 // Координаты точки поиска
	Lng      float64
	RadiusKm float64 // Радиус поиска в километрах
	Search   *string // Подстрока имени или адреса, регистронезависимо (опционально)
	Limit    uint64
	Offset   uint64
}

// HasCoordinates сообщает, задана ли точка поиска.
// lat=0 и lng=0 трактуется как "координаты не переданы": запрос ровно в
// точке пересечения экватора и нулевого меридиана неотличим от отсутствия
// координат (унаследованная неоднозначность протокола).
func (f BusinessSearchFilter) HasCoordinates() bool {
	return f.Lat != 0 && f.Lng != 0
}

// BusinessDetails бизнес с присоединенными данными для выдачи поиска
type BusinessDetails struct {
	Business
	Owner        UserSummary
	Services     []Service
	BookingCount int64
	DistanceKm   *float64 // Заполнено только при геопоиске, округлено до 2 знаков
}

// UserSummary краткая карточка пользователя для вложенных ответов
type UserSummary struct {
	ID    int64
	Name  string
	Email string
	Phone *string
}
