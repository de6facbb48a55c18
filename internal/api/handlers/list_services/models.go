package list_services

import (
	"net/http"
	"time"

	"github.com/washify/marketplace-service/internal/api/handlers"
	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/internal/service/catalog"
)

// BusinessResponse карточка бизнеса в карточке услуги
type BusinessResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// ServiceResponse карточка услуги каталога
type ServiceResponse struct {
	ID              int64            `json:"id"`
	BusinessID      int64            `json:"businessId"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Price           float64          `json:"price"`
	DurationMinutes int              `json:"durationMinutes"`
	Tier            string           `json:"tier"`
	Business        BusinessResponse `json:"business"`
	BookingCount    int64            `json:"bookingCount"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// ListServicesResponse тело ответа каталога услуг
type ListServicesResponse struct {
	Services   []ServiceResponse   `json:"services"`
	Pagination handlers.Pagination `json:"pagination"`
}

// FromListResult конвертирует результат сервиса в ответ
func FromListResult(result *catalog.ListResult, limit, offset uint64) ListServicesResponse {
	list := make([]ServiceResponse, 0, len(result.Services))
	for _, service := range result.Services {
		list = append(list, ServiceResponse{
			ID:              service.ID,
			BusinessID:      service.BusinessID,
			Name:            service.Name,
			Description:     service.Description,
			Price:           service.Price,
			DurationMinutes: service.DurationMinutes,
			Tier:            string(service.Tier),
			Business: BusinessResponse{
				ID:      service.Business.ID,
				Name:    service.Business.Name,
				Address: service.Business.Address,
				Lat:     service.Business.Lat,
				Lng:     service.Business.Lng,
			},
			BookingCount: service.BookingCount,
			CreatedAt:    service.CreatedAt,
		})
	}

	return ListServicesResponse{
		Services:   list,
		Pagination: handlers.NewPagination(result.Total, limit, offset),
	}
}

// ParseFilter читает фильтр каталога из query-параметров
func ParseFilter(r *http.Request, limit, offset uint64) (domain.ServicesFilter, error) {
	filter := domain.ServicesFilter{Limit: limit, Offset: offset}

	businessID, err := handlers.ParseInt64Param(r, "businessId")
	if err != nil {
		return filter, err
	}
	filter.BusinessID = businessID

	if raw := r.URL.Query().Get("tier"); raw != "" {
		tier := domain.ServiceTier(raw)
		filter.Tier = &tier
	}

	if raw := r.URL.Query().Get("minPrice"); raw != "" {
		minPrice, err := handlers.ParseFloatParam(r, "minPrice", 0)
		if err != nil {
			return filter, err
		}
		filter.MinPrice = &minPrice
	}

	if raw := r.URL.Query().Get("maxPrice"); raw != "" {
		maxPrice, err := handlers.ParseFloatParam(r, "maxPrice", 0)
		if err != nil {
			return filter, err
		}
		filter.MaxPrice = &maxPrice
	}

	return filter, nil
}
