package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/washify/marketplace-service/internal/domain"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("stats service: internal error")

// Service сервис агрегатов платформы для витрины и дашборда
type Service struct {
	userRepo     UserRepository
	businessRepo BusinessRepository
	bookingRepo  BookingRepository
	reviewRepo   ReviewRepository
	paymentRepo  PaymentRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(
	userRepo UserRepository,
	businessRepo BusinessRepository,
	bookingRepo BookingRepository,
	reviewRepo ReviewRepository,
	paymentRepo PaymentRepository,
	logger Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		businessRepo: businessRepo,
		bookingRepo:  bookingRepo,
		reviewRepo:   reviewRepo,
		paymentRepo:  paymentRepo,
		logger:       logger,
	}
}

// Overview сводка по платформе
type Overview struct {
	Users            int64
	UsersByRole      map[domain.UserRole]int64
	Businesses       int64
	Bookings         int64
	BookingsByStatus map[domain.BookingStatus]int64
	Reviews          int64
	Revenue          float64
}

// Overview собирает сводку по платформе: пользователи по ролям, бизнесы,
// бронирования по статусам, отзывы и выручка по оплаченным платежам
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	usersByRole, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		s.logger.Error("Overview: users by role error: %v", err)
		return nil, fmt.Errorf("%w: Overview - users by role: %w", ErrInternal, err)
	}

	var totalUsers int64
	for _, count := range usersByRole {
		totalUsers += count
	}

	businesses, err := s.businessRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Overview: businesses count error: %v", err)
		return nil, fmt.Errorf("%w: Overview - businesses count: %w", ErrInternal, err)
	}

	bookingsByStatus, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("Overview: bookings by status error: %v", err)
		return nil, fmt.Errorf("%w: Overview - bookings by status: %w", ErrInternal, err)
	}

	var totalBookings int64
	for _, count := range bookingsByStatus {
		totalBookings += count
	}

	reviews, err := s.reviewRepo.Count(ctx, domain.ReviewsFilter{})
	if err != nil {
		s.logger.Error("Overview: reviews count error: %v", err)
		return nil, fmt.Errorf("%w: Overview - reviews count: %w", ErrInternal, err)
	}

	revenue, err := s.paymentRepo.SumPaid(ctx)
	if err != nil {
		s.logger.Error("Overview: revenue error: %v", err)
		return nil, fmt.Errorf("%w: Overview - revenue: %w", ErrInternal, err)
	}

	return &Overview{
		Users:            totalUsers,
		UsersByRole:      usersByRole,
		Businesses:       businesses,
		Bookings:         totalBookings,
		BookingsByStatus: bookingsByStatus,
		Reviews:          reviews,
		Revenue:          revenue,
	}, nil
}
