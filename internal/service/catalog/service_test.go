package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washify/marketplace-service/internal/domain"
	businessRepo "github.com/washify/marketplace-service/internal/infra/storage/business"
	serviceRepo "github.com/washify/marketplace-service/internal/infra/storage/service"
)

type fakeServiceRepo struct {
	exists    bool
	createErr error
	services  []*domain.ServiceDetails
}

func (f *fakeServiceRepo) Create(_ context.Context, service *domain.Service) (*domain.Service, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *service
	created.ID = 201
	return &created, nil
}

func (f *fakeServiceRepo) List(context.Context, domain.ServicesFilter) ([]*domain.ServiceDetails, error) {
	return f.services, nil
}

func (f *fakeServiceRepo) Count(context.Context, domain.ServicesFilter) (int64, error) {
	return int64(len(f.services)), nil
}

func (f *fakeServiceRepo) ExistsByBusinessAndName(context.Context, int64, string) (bool, error) {
	return f.exists, nil
}

type fakeBusinessRepo struct {
	business *domain.Business
	err      error
}

func (f *fakeBusinessRepo) GetByID(context.Context, int64) (*domain.Business, error) {
	return f.business, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validCreateRequest() *CreateRequest {
	return &CreateRequest{
		BusinessID:      10,
		Name:            "Premium wash",
		Price:           79.99,
		DurationMinutes: 60,
		Tier:            domain.TierPremium,
		ActorID:         5,
	}
}

func TestCreate_OwnerAllowed(t *testing.T) {
	svc := NewService(
		&fakeServiceRepo{},
		&fakeBusinessRepo{business: &domain.Business{ID: 10, OwnerID: 5}},
		noopLogger{},
	)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(201), created.ID)
	assert.Equal(t, domain.TierPremium, created.Tier)
}

func TestCreate_AdminAllowedForForeignBusiness(t *testing.T) {
	svc := NewService(
		&fakeServiceRepo{},
		&fakeBusinessRepo{business: &domain.Business{ID: 10, OwnerID: 99}},
		noopLogger{},
	)

	req := validCreateRequest()
	req.ActorIsAdmin = true

	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreate_NonOwnerDenied(t *testing.T) {
	svc := NewService(
		&fakeServiceRepo{},
		&fakeBusinessRepo{business: &domain.Business{ID: 10, OwnerID: 99}},
		noopLogger{},
	)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_BusinessNotFound(t *testing.T) {
	svc := NewService(
		&fakeServiceRepo{},
		&fakeBusinessRepo{err: businessRepo.ErrBusinessNotFound},
		noopLogger{},
	)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestCreate_InvalidTier(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, &fakeBusinessRepo{}, noopLogger{})

	req := validCreateRequest()
	req.Tier = "GOLD"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_DuplicateName(t *testing.T) {
	svc := NewService(
		&fakeServiceRepo{exists: true},
		&fakeBusinessRepo{business: &domain.Business{ID: 10, OwnerID: 5}},
		noopLogger{},
	)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestCreate_DuplicateNameOnInsertRace(t *testing.T) {
	svc := NewService(
		&fakeServiceRepo{createErr: serviceRepo.ErrDuplicateName},
		&fakeBusinessRepo{business: &domain.Business{ID: 10, OwnerID: 5}},
		noopLogger{},
	)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestList_InvalidTierFilter(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, &fakeBusinessRepo{}, noopLogger{})

	tier := domain.ServiceTier("GOLD")
	_, err := svc.List(context.Background(), domain.ServicesFilter{Tier: &tier})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
