package payments

import (
	"context"
	"fmt"

	"github.com/washify/marketplace-service/internal/domain"
)

// Service сервис для работы с платежами
type Service struct {
	paymentRepo PaymentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(paymentRepo PaymentRepository, logger Logger) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// ListResult страница платежей
type ListResult struct {
	Payments []*domain.Payment
	Total    int64
}

// List возвращает страницу платежей с фильтрацией по бронированию и статусу
func (s *Service) List(ctx context.Context, filter domain.PaymentsFilter) (*ListResult, error) {
	s.logger.Info("ListPayments: booking=%v, status=%v, limit=%d, offset=%d",
		filter.BookingID, filter.Status, filter.Limit, filter.Offset)

	if filter.Status != nil && !filter.Status.Valid() {
		s.logger.Warn("ListPayments: invalid status filter=%s", *filter.Status)
		return nil, fmt.Errorf("%w: unknown status", ErrInvalidInput)
	}

	list, err := s.paymentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListPayments: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	total, err := s.paymentRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("ListPayments: count error: %v", err)
		return nil, fmt.Errorf("%w: List - count error: %w", ErrInternal, err)
	}

	return &ListResult{Payments: list, Total: total}, nil
}
