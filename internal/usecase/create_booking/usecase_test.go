package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washify/marketplace-service/internal/domain"
	bookingRepo "github.com/washify/marketplace-service/internal/infra/storage/booking"
	businessRepo "github.com/washify/marketplace-service/internal/infra/storage/business"
	serviceRepo "github.com/washify/marketplace-service/internal/infra/storage/service"
)

type fakeBookingRepo struct {
	active    bool
	activeErr error
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *booking
	created.ID = 101
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) HasActiveAt(context.Context, int64, time.Time) (bool, error) {
	return f.active, f.activeErr
}

type fakeBusinessRepo struct {
	business *domain.Business
	err      error
}

func (f *fakeBusinessRepo) GetByID(context.Context, int64) (*domain.Business, error) {
	return f.business, f.err
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(context.Context, int64) (*domain.Service, error) {
	return f.service, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings *fakeBookingRepo, businesses *fakeBusinessRepo, services *fakeServiceRepo) *UseCase {
	return NewUseCase(bookings, businesses, services, fakeTxManager{}, noopLogger{})
}

func validRequest() *Request {
	return &Request{
		UserID:      1,
		BusinessID:  10,
		ServiceID:   20,
		ScheduledAt: time.Date(2026, 10, 1, 14, 0, 0, 0, time.UTC),
	}
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(
		bookings,
		&fakeBusinessRepo{business: &domain.Business{ID: 10}},
		&fakeServiceRepo{service: &domain.Service{ID: 20, BusinessID: 10}},
	)

	booking, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(101), booking.ID)
	assert.Equal(t, domain.StatusPending, booking.Status)
	assert.Equal(t, int64(1), booking.UserID)
}

func TestExecute_MissingScheduledAt(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBusinessRepo{}, &fakeServiceRepo{})

	req := validRequest()
	req.ScheduledAt = time.Time{}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_BusinessNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeBusinessRepo{err: businessRepo.ErrBusinessNotFound},
		&fakeServiceRepo{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeBusinessRepo{business: &domain.Business{ID: 10}},
		&fakeServiceRepo{err: serviceRepo.ErrServiceNotFound},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ServiceBelongsToOtherBusiness(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeBusinessRepo{business: &domain.Business{ID: 10}},
		&fakeServiceRepo{service: &domain.Service{ID: 20, BusinessID: 99}},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_SlotTaken(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{active: true},
		&fakeBusinessRepo{business: &domain.Business{ID: 10}},
		&fakeServiceRepo{service: &domain.Service{ID: 20, BusinessID: 10}},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_SlotTakenOnInsertRace(t *testing.T) {
	// Слот свободен при проверке, но вставка упирается в уникальный индекс
	bookings := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(
		bookings,
		&fakeBusinessRepo{business: &domain.Business{ID: 10}},
		&fakeServiceRepo{service: &domain.Service{ID: 20, BusinessID: 10}},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}
