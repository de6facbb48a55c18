package create_payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/washify/marketplace-service/internal/domain"
	bookingRepo "github.com/washify/marketplace-service/internal/infra/storage/booking"
	paymentRepo "github.com/washify/marketplace-service/internal/infra/storage/payment"
	"github.com/washify/marketplace-service/pkg/ptr"
)

// UseCase use case создания платежа
type UseCase struct {
	paymentRepo PaymentRepository
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	paymentRepo PaymentRepository,
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute создает платеж для бронирования.
// Сумма должна в точности совпадать с ценой услуги. Платеж с провайдером
// "cash" рассчитывается синхронно и сразу помечается PAID, остальные
// создаются в статусе PENDING. Один платеж на бронирование, уникальный
// индекс booking_id является источником истины при гонке.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Payment, error) {
	uc.logger.Info("CreatePayment: booking=%d, amount=%.2f, provider=%s", req.BookingID, req.Amount, req.Provider)

	if req.Amount <= 0 {
		uc.logger.Warn("CreatePayment: non-positive amount=%.2f", req.Amount)
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CreatePayment: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CreatePayment: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
	}

	service, err := uc.serviceRepo.GetByID(ctx, booking.ServiceID)
	if err != nil {
		uc.logger.Error("CreatePayment: failed to get service id=%d: %v", booking.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
	}

	if req.Amount != service.Price {
		uc.logger.Warn("CreatePayment: amount=%.2f does not match service price=%.2f", req.Amount, service.Price)
		return nil, ErrAmountMismatch
	}

	currency := req.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	var result *domain.Payment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Быстрая проверка наличия платежа
		_, err := uc.paymentRepo.GetByBookingID(txCtx, req.BookingID)
		if err == nil {
			uc.logger.Warn("CreatePayment: payment already exists for booking=%d", req.BookingID)
			return ErrPaymentExists
		}
		if !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			uc.logger.Error("CreatePayment: payment lookup failed: %v", err)
			return fmt.Errorf("%w: payment lookup: %w", ErrInternal, err)
		}

		payment := &domain.Payment{
			BookingID: req.BookingID,
			Amount:    req.Amount,
			Currency:  currency,
			Status:    domain.PaymentPending,
			Provider:  req.Provider,
		}

		// Наличный расчет проходит синхронно
		if req.Provider == domain.ProviderCash {
			payment.Status = domain.PaymentPaid
			payment.PaidAt = ptr.Ptr(time.Now().UTC())
		}

		created, err := uc.paymentRepo.Create(txCtx, payment)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrPaymentExists) {
				return ErrPaymentExists
			}
			uc.logger.Error("CreatePayment: failed to create payment: %v", err)
			return fmt.Errorf("%w: failed to create payment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreatePayment: payment created id=%d, booking=%d, status=%s",
		result.ID, result.BookingID, result.Status)
	return result, nil
}
