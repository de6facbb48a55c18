package search_businesses

import (
	"context"
	"fmt"
	"math"

	"github.com/washify/marketplace-service/internal/domain"
)

// UseCase use case поиска бизнесов
type UseCase struct {
	businessRepo BusinessRepository
	serviceRepo  ServiceRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(businessRepo BusinessRepository, serviceRepo ServiceRepository, logger Logger) *UseCase {
	return &UseCase{
		businessRepo: businessRepo,
		serviceRepo:  serviceRepo,
		logger:       logger,
	}
}

// Result страница выдачи поиска
type Result struct {
	Businesses []*domain.BusinessDetails
	Total      int64
}

// Execute ищет бизнесы. При наличии координат выдача ограничивается
// радиусом и сортируется по расстоянию (Haversine, считается в SQL),
// иначе сортировка по дате создания. Расстояние округляется до 2 знаков.
// Каждому бизнесу присоединяется его список услуг.
func (uc *UseCase) Execute(ctx context.Context, filter domain.BusinessSearchFilter) (*Result, error) {
	uc.logger.Info("SearchBusinesses: lat=%f, lng=%f, radius=%f, search=%v, limit=%d, offset=%d",
		filter.Lat, filter.Lng, filter.RadiusKm, filter.Search, filter.Limit, filter.Offset)

	if filter.RadiusKm < 0 {
		uc.logger.Warn("SearchBusinesses: negative radius=%f", filter.RadiusKm)
		return nil, fmt.Errorf("%w: radius must be non-negative", ErrInvalidInput)
	}
	if filter.RadiusKm == 0 {
		filter.RadiusKm = domain.DefaultSearchRadiusKm
	}

	businesses, err := uc.businessRepo.Search(ctx, filter)
	if err != nil {
		uc.logger.Error("SearchBusinesses: repository error: %v", err)
		return nil, fmt.Errorf("%w: search: %w", ErrInternal, err)
	}

	total, err := uc.businessRepo.CountSearch(ctx, filter)
	if err != nil {
		uc.logger.Error("SearchBusinesses: count error: %v", err)
		return nil, fmt.Errorf("%w: count: %w", ErrInternal, err)
	}

	// Собираем услуги всех найденных бизнесов одним запросом
	ids := make([]int64, 0, len(businesses))
	for _, business := range businesses {
		ids = append(ids, business.ID)
	}

	servicesByBusiness, err := uc.serviceRepo.ListByBusinessIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("SearchBusinesses: services lookup error: %v", err)
		return nil, fmt.Errorf("%w: services lookup: %w", ErrInternal, err)
	}

	for _, business := range businesses {
		business.Services = servicesByBusiness[business.ID]
		if business.Services == nil {
			business.Services = []domain.Service{}
		}
		if business.DistanceKm != nil {
			rounded := math.Round(*business.DistanceKm*100) / 100
			business.DistanceKm = &rounded
		}
	}

	uc.logger.Info("SearchBusinesses: found %d businesses, total=%d", len(businesses), total)
	return &Result{Businesses: businesses, Total: total}, nil
}
