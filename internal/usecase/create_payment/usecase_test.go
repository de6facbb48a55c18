package create_payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washify/marketplace-service/internal/domain"
	bookingRepo "github.com/washify/marketplace-service/internal/infra/storage/booking"
	paymentRepo "github.com/washify/marketplace-service/internal/infra/storage/payment"
)

type fakePaymentRepo struct {
	existing  *domain.Payment
	lookupErr error
	createErr error
	lastSaved *domain.Payment
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *payment
	created.ID = 501
	f.lastSaved = &created
	return &created, nil
}

func (f *fakePaymentRepo) GetByBookingID(context.Context, int64) (*domain.Payment, error) {
	if f.existing != nil {
		return f.existing, nil
	}
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return nil, paymentRepo.ErrPaymentNotFound
}

type fakeBookingRepo struct {
	booking *domain.Booking
	err     error
}

func (f *fakeBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	return f.booking, f.err
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

func newTestUseCase(payments *fakePaymentRepo) *UseCase {
	return NewUseCase(
		payments,
		&fakeBookingRepo{booking: &domain.Booking{ID: 1, ServiceID: 20}},
		&fakeServiceRepo{service: &domain.Service{ID: 20, Price: 49.99}},
		fakeTxManager{},
		noopLogger{},
	)
}

func TestExecute_CardPaymentPending(t *testing.T) {
	payments := &fakePaymentRepo{}
	uc := newTestUseCase(payments)

	payment, err := uc.Execute(context.Background(), &Request{
		BookingID: 1,
		Amount:    49.99,
		Provider:  "stripe",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, payment.Status)
	assert.Nil(t, payment.PaidAt)
	assert.Equal(t, domain.DefaultCurrency, payment.Currency)
}

func TestExecute_CashPaymentSettlesImmediately(t *testing.T) {
	payments := &fakePaymentRepo{}
	uc := newTestUseCase(payments)

	payment, err := uc.Execute(context.Background(), &Request{
		BookingID: 1,
		Amount:    49.99,
		Provider:  domain.ProviderCash,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, payment.Status)
	require.NotNil(t, payment.PaidAt)
}

func TestExecute_ExplicitCurrencyKept(t *testing.T) {
	uc := newTestUseCase(&fakePaymentRepo{})

	payment, err := uc.Execute(context.Background(), &Request{
		BookingID: 1,
		Amount:    49.99,
		Currency:  "EUR",
		Provider:  "stripe",
	})
	require.NoError(t, err)
	assert.Equal(t, "EUR", payment.Currency)
}

func TestExecute_NonPositiveAmount(t *testing.T) {
	uc := newTestUseCase(&fakePaymentRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, Amount: 0, Provider: "stripe"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 1, Amount: -5, Provider: "stripe"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_AmountMismatch(t *testing.T) {
	uc := newTestUseCase(&fakePaymentRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, Amount: 50.00, Provider: "stripe"})
	assert.ErrorIs(t, err, ErrAmountMismatch)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakePaymentRepo{},
		&fakeBookingRepo{err: bookingRepo.ErrBookingNotFound},
		&fakeServiceRepo{},
		fakeTxManager{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 404, Amount: 10, Provider: "stripe"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_PaymentAlreadyExists(t *testing.T) {
	uc := newTestUseCase(&fakePaymentRepo{existing: &domain.Payment{ID: 7, BookingID: 1}})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, Amount: 49.99, Provider: "stripe"})
	assert.ErrorIs(t, err, ErrPaymentExists)
}

func TestExecute_PaymentExistsOnInsertRace(t *testing.T) {
	uc := newTestUseCase(&fakePaymentRepo{createErr: paymentRepo.ErrPaymentExists})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, Amount: 49.99, Provider: "stripe"})
	assert.ErrorIs(t, err, ErrPaymentExists)
}
