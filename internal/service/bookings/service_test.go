package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washify/marketplace-service/internal/domain"
	bookingRepo "github.com/washify/marketplace-service/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	booking    *domain.Booking
	getErr     error
	updateErr  error
	updatedTo  domain.BookingStatus
	list       []*domain.BookingDetails
	lastFilter domain.BookingsFilter
}

func (f *fakeBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error) {
	f.lastFilter = filter
	return f.list, nil
}

func (f *fakeBookingRepo) Count(context.Context, domain.BookingsFilter) (int64, error) {
	return int64(len(f.list)), nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedTo = status
	return nil
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

func pendingBooking() *domain.Booking {
	return &domain.Booking{ID: 1, UserID: 2, BusinessID: 10, Status: domain.StatusPending}
}

func TestUpdateStatus_OwnerMovesToInProgress(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	svc := NewService(repo, &fakeBusinessRepo{business: &domain.Business{ID: 10, OwnerID: 5}}, noopLogger{})

	booking, err := svc.UpdateStatus(context.Background(), &UpdateStatusRequest{
		BookingID: 1,
		Status:    domain.StatusInProgress,
		ActorID:   5,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, booking.Status)
	assert.Equal(t, domain.StatusInProgress, repo.updatedTo)
}

func TestUpdateStatus_AdminSkipsOwnershipCheck(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	svc := NewService(repo, &fakeBusinessRepo{business: &domain.Business{ID: 10, OwnerID: 99}}, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), &UpdateStatusRequest{
		BookingID:    1,
		Status:       domain.StatusCancelled,
		ActorID:      1,
		ActorIsAdmin: true,
	})
	assert.NoError(t, err)
}

func TestUpdateStatus_NonOwnerDenied(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	svc := NewService(repo, &fakeBusinessRepo{business: &domain.Business{ID: 10, OwnerID: 99}}, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), &UpdateStatusRequest{
		BookingID: 1,
		Status:    domain.StatusCancelled,
		ActorID:   5,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	svc := NewService(repo, &fakeBusinessRepo{business: &domain.Business{ID: 10, OwnerID: 5}}, noopLogger{})

	// PENDING нельзя сразу перевести в COMPLETED
	_, err := svc.UpdateStatus(context.Background(), &UpdateStatusRequest{
		BookingID: 1,
		Status:    domain.StatusCompleted,
		ActorID:   5,
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_TerminalStatusFrozen(t *testing.T) {
	repo := &fakeBookingRepo{booking: &domain.Booking{ID: 1, BusinessID: 10, Status: domain.StatusCompleted}}
	svc := NewService(repo, &fakeBusinessRepo{business: &domain.Business{ID: 10, OwnerID: 5}}, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), &UpdateStatusRequest{
		BookingID: 1,
		Status:    domain.StatusCancelled,
		ActorID:   5,
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeBusinessRepo{}, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), &UpdateStatusRequest{
		BookingID: 1,
		Status:    "DONE",
		ActorID:   5,
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_BookingNotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, &fakeBusinessRepo{}, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), &UpdateStatusRequest{
		BookingID: 404,
		Status:    domain.StatusCancelled,
		ActorID:   5,
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeBusinessRepo{}, noopLogger{})

	status := domain.BookingStatus("DONE")
	_, err := svc.List(context.Background(), domain.BookingsFilter{Status: &status})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
