package search_businesses

import (
	"time"

	"github.com/washify/marketplace-service/internal/api/handlers"
	"github.com/washify/marketplace-service/internal/domain"
	searchBusinesses "github.com/washify/marketplace-service/internal/usecase/search_businesses"
)

// OwnerResponse карточка владельца бизнеса
type OwnerResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// ServiceResponse карточка услуги в выдаче поиска
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Tier            string  `json:"tier"`
}

// BusinessResponse карточка бизнеса в выдаче поиска
type BusinessResponse struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Address      string            `json:"address"`
	Lat          float64           `json:"lat"`
	Lng          float64           `json:"lng"`
	Owner        OwnerResponse     `json:"owner"`
	Services     []ServiceResponse `json:"services"`
	BookingCount int64             `json:"bookingCount"`
	DistanceKm   *float64          `json:"distanceKm,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// SearchBusinessesResponse тело ответа поиска
type SearchBusinessesResponse struct {
	Businesses []BusinessResponse  `json:"businesses"`
	Pagination handlers.Pagination `json:"pagination"`
}

// FromResult конвертирует результат use case в ответ
func FromResult(result *searchBusinesses.Result, limit, offset uint64) SearchBusinessesResponse {
	list := make([]BusinessResponse, 0, len(result.Businesses))
	for _, business := range result.Businesses {
		services := make([]ServiceResponse, 0, len(business.Services))
		for _, service := range business.Services {
			services = append(services, ServiceResponse{
				ID:              service.ID,
				Name:            service.Name,
				Description:     service.Description,
				Price:           service.Price,
				DurationMinutes: service.DurationMinutes,
				Tier:            string(service.Tier),
			})
		}

		list = append(list, BusinessResponse{
			ID:      business.ID,
			Name:    business.Name,
			Address: business.Address,
			Lat:     business.Lat,
			Lng:     business.Lng,
			Owner: OwnerResponse{
				ID:    business.Owner.ID,
				Name:  business.Owner.Name,
				Email: business.Owner.Email,
				Phone: business.Owner.Phone,
			},
			Services:     services,
			BookingCount: business.BookingCount,
			DistanceKm:   business.DistanceKm,
			CreatedAt:    business.CreatedAt,
		})
	}

	return SearchBusinessesResponse{
		Businesses: list,
		Pagination: handlers.NewPagination(result.Total, limit, offset),
	}
}

// ParseFilter читает фильтр поиска из query-параметров
func ParseFilter(lat, lng, radius float64, search string, limit, offset uint64) domain.BusinessSearchFilter {
	filter := domain.BusinessSearchFilter{
		Lat:      lat,
		Lng:      lng,
		RadiusKm: radius,
		Limit:    limit,
		Offset:   offset,
	}
	if search != "" {
		filter.Search = &search
	}
	return filter
}
