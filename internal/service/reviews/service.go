package reviews

import (
	"context"
	"fmt"

	"github.com/washify/marketplace-service/internal/domain"
)

// Service сервис для работы с отзывами
type Service struct {
	reviewRepo ReviewRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, logger Logger) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// ListResult страница отзывов. Rating заполняется только при фильтре
// по бизнесу.
type ListResult struct {
	Reviews []*domain.ReviewDetails
	Total   int64
	Rating  *domain.RatingSummary
}

// List возвращает страницу отзывов с фильтрацией по бизнесу, автору и
// диапазону оценок. При фильтре по бизнесу дополнительно считается
// средний рейтинг.
func (s *Service) List(ctx context.Context, filter domain.ReviewsFilter) (*ListResult, error) {
	s.logger.Info("ListReviews: business=%v, user=%v, limit=%d, offset=%d",
		filter.BusinessID, filter.UserID, filter.Limit, filter.Offset)

	if filter.MinRating < 0 || filter.MaxRating < 0 || filter.MinRating > domain.MaxRating || filter.MaxRating > domain.MaxRating {
		s.logger.Warn("ListReviews: invalid rating range min=%d, max=%d", filter.MinRating, filter.MaxRating)
		return nil, fmt.Errorf("%w: rating out of range", ErrInvalidInput)
	}

	list, err := s.reviewRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListReviews: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	total, err := s.reviewRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("ListReviews: count error: %v", err)
		return nil, fmt.Errorf("%w: List - count error: %w", ErrInternal, err)
	}

	result := &ListResult{Reviews: list, Total: total}

	if filter.BusinessID != nil {
		rating, err := s.reviewRepo.RatingSummary(ctx, *filter.BusinessID)
		if err != nil {
			s.logger.Error("ListReviews: rating summary error for business=%d: %v", *filter.BusinessID, err)
			return nil, fmt.Errorf("%w: List - rating summary: %w", ErrInternal, err)
		}
		result.Rating = rating
	}

	return result, nil
}
