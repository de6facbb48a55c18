package create_review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washify/marketplace-service/internal/domain"
	bookingRepo "github.com/washify/marketplace-service/internal/infra/storage/booking"
	paymentRepo "github.com/washify/marketplace-service/internal/infra/storage/payment"
	reviewRepo "github.com/washify/marketplace-service/internal/infra/storage/review"
	"github.com/washify/marketplace-service/pkg/ptr"
)

type fakeReviewRepo struct {
	existing  *domain.Review
	createErr error
}

func (f *fakeReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *review
	created.ID = 301
	return &created, nil
}

func (f *fakeReviewRepo) GetByBookingID(context.Context, int64) (*domain.Review, error) {
	if f.existing != nil {
		return f.existing, nil
	}
	return nil, reviewRepo.ErrReviewNotFound
}

type fakeBookingRepo struct {
	booking *domain.Booking
	err     error
}

func (f *fakeBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	return f.booking, f.err
}

type fakePaymentRepo struct {
	payment *domain.Payment
}

func (f *fakePaymentRepo) GetByBookingID(context.Context, int64) (*domain.Payment, error) {
	if f.payment == nil {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return f.payment, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func completedBooking() *domain.Booking {
	return &domain.Booking{ID: 1, UserID: 5, Status: domain.StatusCompleted}
}

func newTestUseCase(reviews *fakeReviewRepo, bookings *fakeBookingRepo, payments *fakePaymentRepo) *UseCase {
	return NewUseCase(reviews, bookings, payments, fakeTxManager{}, noopLogger{})
}

func TestExecute_Success_NoPayment(t *testing.T) {
	uc := newTestUseCase(
		&fakeReviewRepo{},
		&fakeBookingRepo{booking: completedBooking()},
		&fakePaymentRepo{},
	)

	review, err := uc.Execute(context.Background(), &Request{
		UserID:    5,
		BookingID: 1,
		Rating:    5,
		Comment:   ptr.Ptr("great service"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(301), review.ID)
	assert.Equal(t, 5, review.Rating)
}

func TestExecute_Success_PaidPayment(t *testing.T) {
	uc := newTestUseCase(
		&fakeReviewRepo{},
		&fakeBookingRepo{booking: completedBooking()},
		&fakePaymentRepo{payment: &domain.Payment{Status: domain.PaymentPaid}},
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, BookingID: 1, Rating: 4})
	require.NoError(t, err)
}

func TestExecute_RatingOutOfRange(t *testing.T) {
	uc := newTestUseCase(&fakeReviewRepo{}, &fakeBookingRepo{}, &fakePaymentRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, BookingID: 1, Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = uc.Execute(context.Background(), &Request{UserID: 5, BookingID: 1, Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeReviewRepo{},
		&fakeBookingRepo{err: bookingRepo.ErrBookingNotFound},
		&fakePaymentRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, BookingID: 404, Rating: 5})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_ForeignBookingLooksMissing(t *testing.T) {
	uc := newTestUseCase(
		&fakeReviewRepo{},
		&fakeBookingRepo{booking: completedBooking()},
		&fakePaymentRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: 99, BookingID: 1, Rating: 5})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_BookingNotCompleted(t *testing.T) {
	uc := newTestUseCase(
		&fakeReviewRepo{},
		&fakeBookingRepo{booking: &domain.Booking{ID: 1, UserID: 5, Status: domain.StatusPending}},
		&fakePaymentRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, BookingID: 1, Rating: 5})
	assert.ErrorIs(t, err, ErrBookingNotCompleted)
}

func TestExecute_ReviewAlreadyExists(t *testing.T) {
	uc := newTestUseCase(
		&fakeReviewRepo{existing: &domain.Review{ID: 9}},
		&fakeBookingRepo{booking: completedBooking()},
		&fakePaymentRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, BookingID: 1, Rating: 5})
	assert.ErrorIs(t, err, ErrReviewExists)
}

func TestExecute_PendingPaymentBlocksReview(t *testing.T) {
	uc := newTestUseCase(
		&fakeReviewRepo{},
		&fakeBookingRepo{booking: completedBooking()},
		&fakePaymentRepo{payment: &domain.Payment{Status: domain.PaymentPending}},
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, BookingID: 1, Rating: 5})
	assert.ErrorIs(t, err, ErrPaymentNotSettled)
}

func TestExecute_ReviewExistsOnInsertRace(t *testing.T) {
	uc := newTestUseCase(
		&fakeReviewRepo{createErr: reviewRepo.ErrReviewExists},
		&fakeBookingRepo{booking: completedBooking()},
		&fakePaymentRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, BookingID: 1, Rating: 5})
	assert.ErrorIs(t, err, ErrReviewExists)
}
