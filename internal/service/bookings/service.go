package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/washify/marketplace-service/internal/domain"
	bookingRepo "github.com/washify/marketplace-service/internal/infra/storage/booking"
	businessRepo "github.com/washify/marketplace-service/internal/infra/storage/business"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	businessRepo BusinessRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, businessRepo BusinessRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// ListResult страница бронирований с присоединенными карточками
type ListResult struct {
	Bookings []*domain.BookingDetails
	Total    int64
}

// List возвращает страницу бронирований с фильтрацией по пользователю,
// бизнесу и статусу
func (s *Service) List(ctx context.Context, filter domain.BookingsFilter) (*ListResult, error) {
	s.logger.Info("ListBookings: user=%v, business=%v, status=%v, limit=%d, offset=%d",
		filter.UserID, filter.BusinessID, filter.Status, filter.Limit, filter.Offset)

	if filter.Status != nil && !filter.Status.Valid() {
		s.logger.Warn("ListBookings: invalid status filter=%s", *filter.Status)
		return nil, fmt.Errorf("%w: unknown status", ErrInvalidStatus)
	}

	list, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	total, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: count error: %v", err)
		return nil, fmt.Errorf("%w: List - count error: %w", ErrInternal, err)
	}

	return &ListResult{Bookings: list, Total: total}, nil
}

// UpdateStatusRequest входные данные смены статуса бронирования
type UpdateStatusRequest struct {
	BookingID    int64
	Status       domain.BookingStatus
	ActorID      int64
	ActorIsAdmin bool
}

// UpdateStatus переводит бронирование в новый статус.
// Допустимы только переходы PENDING → IN_PROGRESS | CANCELLED и
// IN_PROGRESS → COMPLETED | CANCELLED. Менять статус может владелец
// бизнеса или администратор.
func (s *Service) UpdateStatus(ctx context.Context, req *UpdateStatusRequest) (*domain.Booking, error) {
	s.logger.Info("UpdateBookingStatus: booking=%d, status=%s, actor=%d", req.BookingID, req.Status, req.ActorID)

	if !req.Status.Valid() {
		s.logger.Warn("UpdateBookingStatus: invalid status=%s", req.Status)
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateBookingStatus: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateBookingStatus: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %w", ErrInternal, err)
	}

	if !req.ActorIsAdmin {
		business, err := s.businessRepo.GetByID(ctx, booking.BusinessID)
		if err != nil {
			if errors.Is(err, businessRepo.ErrBusinessNotFound) {
				s.logger.Warn("UpdateBookingStatus: business id=%d not found", booking.BusinessID)
				return nil, ErrBookingNotFound
			}
			s.logger.Error("UpdateBookingStatus: failed to get business id=%d: %v", booking.BusinessID, err)
			return nil, fmt.Errorf("%w: UpdateStatus - get business: %w", ErrInternal, err)
		}
		if business.OwnerID != req.ActorID {
			s.logger.Warn("UpdateBookingStatus: actor=%d is not owner of business=%d", req.ActorID, booking.BusinessID)
			return nil, ErrAccessDenied
		}
	}

	if !booking.CanTransitionTo(req.Status) {
		s.logger.Warn("UpdateBookingStatus: transition %s -> %s not allowed for booking=%d",
			booking.Status, req.Status, req.BookingID)
		return nil, ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, req.BookingID, req.Status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateBookingStatus: failed to update booking=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - update: %w", ErrInternal, err)
	}

	booking.Status = req.Status
	s.logger.Info("UpdateBookingStatus: booking=%d moved to %s", req.BookingID, req.Status)
	return booking, nil
}
