package create_business

import (
	"time"

	"github.com/washify/marketplace-service/internal/domain"
)

// CreateBusinessRequest тело запроса регистрации бизнеса
type CreateBusinessRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=200"`
	Address string  `json:"address" validate:"required,min=5,max=500"`
	Lat     float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng     float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

// BusinessResponse тело ответа с созданным бизнесом
type BusinessResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	OwnerID   int64     `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainBusiness конвертирует доменный бизнес в ответ
func FromDomainBusiness(business *domain.Business) BusinessResponse {
	return BusinessResponse{
		ID:        business.ID,
		Name:      business.Name,
		Address:   business.Address,
		Lat:       business.Lat,
		Lng:       business.Lng,
		OwnerID:   business.OwnerID,
		CreatedAt: business.CreatedAt,
	}
}
