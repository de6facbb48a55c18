package search_businesses

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/pkg/ptr"
)

type fakeBusinessRepo struct {
	businesses []*domain.BusinessDetails
	total      int64
	lastFilter domain.BusinessSearchFilter
}

func (f *fakeBusinessRepo) Search(_ context.Context, filter domain.BusinessSearchFilter) ([]*domain.BusinessDetails, error) {
	f.lastFilter = filter
	return f.businesses, nil
}

func (f *fakeBusinessRepo) CountSearch(context.Context, domain.BusinessSearchFilter) (int64, error) {
	return f.total, nil
}

type fakeServiceRepo struct {
	byBusiness map[int64][]domain.Service
}

func (f *fakeServiceRepo) ListByBusinessIDs(context.Context, []int64) (map[int64][]domain.Service, error) {
	return f.byBusiness, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_AttachesServicesAndRoundsDistance(t *testing.T) {
	businesses := &fakeBusinessRepo{
		businesses: []*domain.BusinessDetails{
			{Business: domain.Business{ID: 1}, DistanceKm: ptr.Ptr(3.14159)},
			{Business: domain.Business{ID: 2}},
		},
		total: 2,
	}
	services := &fakeServiceRepo{
		byBusiness: map[int64][]domain.Service{
			1: {{ID: 10, BusinessID: 1, Name: "Basic wash"}},
		},
	}

	uc := NewUseCase(businesses, services, noopLogger{})

	result, err := uc.Execute(context.Background(), domain.BusinessSearchFilter{Lat: 40.7, Lng: -73.9, RadiusKm: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	require.Len(t, result.Businesses, 2)

	assert.Len(t, result.Businesses[0].Services, 1)
	require.NotNil(t, result.Businesses[0].DistanceKm)
	assert.Equal(t, 3.14, *result.Businesses[0].DistanceKm)

	// Бизнес без услуг получает пустой слайс, а не nil
	assert.NotNil(t, result.Businesses[1].Services)
	assert.Empty(t, result.Businesses[1].Services)
}

func TestExecute_DefaultRadius(t *testing.T) {
	businesses := &fakeBusinessRepo{}
	uc := NewUseCase(businesses, &fakeServiceRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), domain.BusinessSearchFilter{Lat: 40.7, Lng: -73.9})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSearchRadiusKm, businesses.lastFilter.RadiusKm)
}

func TestExecute_NegativeRadius(t *testing.T) {
	uc := NewUseCase(&fakeBusinessRepo{}, &fakeServiceRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), domain.BusinessSearchFilter{Lat: 40.7, Lng: -73.9, RadiusKm: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
