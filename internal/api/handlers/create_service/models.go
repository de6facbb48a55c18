package create_service

import (
	"time"

	"github.com/washify/marketplace-service/internal/domain"
)

// CreateServiceRequest тело запроса создания услуги
type CreateServiceRequest struct {
	BusinessID      int64   `json:"businessId" validate:"required,gt=0"`
	Name            string  `json:"name" validate:"required,min=2,max=200"`
	Description     string  `json:"description" validate:"max=2000"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	DurationMinutes int     `json:"durationMinutes" validate:"required,gt=0,lte=1440"`
	Tier            string  `json:"tier" validate:"required,oneof=BASIC PREMIUM LUXURY"`
}

// ServiceResponse тело ответа с созданной услугой
type ServiceResponse struct {
	ID              int64     `json:"id"`
	BusinessID      int64     `json:"businessId"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	Tier            string    `json:"tier"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FromDomainService конвертирует доменную услугу в ответ
func FromDomainService(service *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              service.ID,
		BusinessID:      service.BusinessID,
		Name:            service.Name,
		Description:     service.Description,
		Price:           service.Price,
		DurationMinutes: service.DurationMinutes,
		Tier:            string(service.Tier),
		CreatedAt:       service.CreatedAt,
	}
}
