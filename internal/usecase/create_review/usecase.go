package create_review

import (
	"context"
	"errors"
	"fmt"

	"github.com/washify/marketplace-service/internal/domain"
	bookingRepo "github.com/washify/marketplace-service/internal/infra/storage/booking"
	paymentRepo "github.com/washify/marketplace-service/internal/infra/storage/payment"
	reviewRepo "github.com/washify/marketplace-service/internal/infra/storage/review"
)

// UseCase use case создания отзыва
type UseCase struct {
	reviewRepo  ReviewRepository
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reviewRepo ReviewRepository,
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute создает отзыв на бронирование.
// Отзыв может оставить только владелец бронирования, бронирование должно
// быть COMPLETED, платеж (если он есть) должен быть PAID, на бронирование
// допускается один отзыв. Проверки и вставка идут в сериализуемой
// транзакции, уникальный индекс booking_id остается источником истины.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Review, error) {
	uc.logger.Info("CreateReview: user=%d, booking=%d, rating=%d", req.UserID, req.BookingID, req.Rating)

	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		uc.logger.Warn("CreateReview: rating=%d out of range", req.Rating)
		return nil, ErrInvalidRating
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CreateReview: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CreateReview: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
	}

	// Чужое бронирование выглядит как несуществующее
	if booking.UserID != req.UserID {
		uc.logger.Warn("CreateReview: booking id=%d belongs to user=%d, not %d",
			req.BookingID, booking.UserID, req.UserID)
		return nil, ErrBookingNotFound
	}

	if booking.Status != domain.StatusCompleted {
		uc.logger.Warn("CreateReview: booking id=%d has status=%s", req.BookingID, booking.Status)
		return nil, ErrBookingNotCompleted
	}

	var result *domain.Review

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Быстрая проверка наличия отзыва
		_, err := uc.reviewRepo.GetByBookingID(txCtx, req.BookingID)
		if err == nil {
			uc.logger.Warn("CreateReview: review already exists for booking=%d", req.BookingID)
			return ErrReviewExists
		}
		if !errors.Is(err, reviewRepo.ErrReviewNotFound) {
			uc.logger.Error("CreateReview: review lookup failed: %v", err)
			return fmt.Errorf("%w: review lookup: %w", ErrInternal, err)
		}

		// Если платеж есть, он должен быть оплачен. Бронирование без
		// платежа отзыву не мешает.
		payment, err := uc.paymentRepo.GetByBookingID(txCtx, req.BookingID)
		if err != nil && !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			uc.logger.Error("CreateReview: payment lookup failed: %v", err)
			return fmt.Errorf("%w: payment lookup: %w", ErrInternal, err)
		}
		if payment != nil && payment.Status != domain.PaymentPaid {
			uc.logger.Warn("CreateReview: payment for booking=%d has status=%s", req.BookingID, payment.Status)
			return ErrPaymentNotSettled
		}

		review := &domain.Review{
			UserID:    req.UserID,
			BookingID: req.BookingID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}

		created, err := uc.reviewRepo.Create(txCtx, review)
		if err != nil {
			if errors.Is(err, reviewRepo.ErrReviewExists) {
				return ErrReviewExists
			}
			uc.logger.Error("CreateReview: failed to create review: %v", err)
			return fmt.Errorf("%w: failed to create review: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReview: review created id=%d, booking=%d", result.ID, result.BookingID)
	return result, nil
}
