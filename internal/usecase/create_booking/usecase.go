package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/washify/marketplace-service/internal/domain"
	bookingRepo "github.com/washify/marketplace-service/internal/infra/storage/booking"
	businessRepo "github.com/washify/marketplace-service/internal/infra/storage/business"
	serviceRepo "github.com/washify/marketplace-service/internal/infra/storage/service"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	businessRepo BusinessRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	businessRepo BusinessRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		businessRepo: businessRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute создает бронирование в статусе PENDING.
// Проверка занятости слота и вставка выполняются в сериализуемой
// транзакции; частичный уникальный индекс активного слота остается
// источником истины при гонке.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("CreateBooking: user=%d, business=%d, service=%d, scheduledAt=%s",
		req.UserID, req.BusinessID, req.ServiceID, req.ScheduledAt.Format("2006-01-02T15:04:05Z07:00"))

	if req.ScheduledAt.IsZero() {
		uc.logger.Warn("CreateBooking: scheduledAt is empty")
		return nil, fmt.Errorf("%w: scheduledAt is required", ErrInvalidInput)
	}

	// Бизнес должен существовать
	if _, err := uc.businessRepo.GetByID(ctx, req.BusinessID); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateBooking: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateBooking: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %w", ErrInternal, err)
	}

	// Услуга должна существовать и принадлежать этому бизнесу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
	}
	if service.BusinessID != req.BusinessID {
		uc.logger.Warn("CreateBooking: service id=%d belongs to business=%d, not %d",
			req.ServiceID, service.BusinessID, req.BusinessID)
		return nil, ErrServiceNotFound
	}

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Быстрая проверка занятости слота с блокировкой строки
		taken, err := uc.bookingRepo.HasActiveAt(txCtx, req.BusinessID, req.ScheduledAt)
		if err != nil {
			uc.logger.Error("CreateBooking: slot check failed: %v", err)
			return fmt.Errorf("%w: slot check: %w", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("CreateBooking: slot taken, business=%d, scheduledAt=%s",
				req.BusinessID, req.ScheduledAt)
			return ErrSlotNotAvailable
		}

		booking := &domain.Booking{
			UserID:      req.UserID,
			BusinessID:  req.BusinessID,
			ServiceID:   req.ServiceID,
			ScheduledAt: req.ScheduledAt,
			Status:      domain.StatusPending,
			Notes:       req.Notes,
			Photos:      req.Photos,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking created id=%d", result.ID)
	return result, nil
}
