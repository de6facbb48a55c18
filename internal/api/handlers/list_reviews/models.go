package list_reviews

import (
	"net/http"
	"strconv"
	"time"

	"github.com/washify/marketplace-service/internal/api/handlers"
	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/internal/service/reviews"
)

// AuthorResponse карточка автора отзыва, email не раскрывается
type AuthorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ServiceResponse карточка услуги в отзыве
type ServiceResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Tier string `json:"tier"`
}

// BusinessResponse карточка бизнеса в отзыве
type BusinessResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ReviewResponse карточка отзыва в списке
type ReviewResponse struct {
	ID        int64            `json:"id"`
	BookingID int64            `json:"bookingId"`
	Rating    int              `json:"rating"`
	Comment   *string          `json:"comment,omitempty"`
	Author    AuthorResponse   `json:"author"`
	Service   ServiceResponse  `json:"service"`
	Business  BusinessResponse `json:"business"`
	CreatedAt time.Time        `json:"createdAt"`
}

// RatingResponse агрегат рейтинга бизнеса
type RatingResponse struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// ListReviewsResponse тело ответа списка отзывов.
// AverageRating заполняется только при фильтре по бизнесу.
type ListReviewsResponse struct {
	Reviews       []ReviewResponse    `json:"reviews"`
	AverageRating *RatingResponse     `json:"averageRating,omitempty"`
	Pagination    handlers.Pagination `json:"pagination"`
}

// FromListResult конвертирует результат сервиса в ответ
func FromListResult(result *reviews.ListResult, limit, offset uint64) ListReviewsResponse {
	list := make([]ReviewResponse, 0, len(result.Reviews))
	for _, review := range result.Reviews {
		list = append(list, ReviewResponse{
			ID:        review.ID,
			BookingID: review.BookingID,
			Rating:    review.Rating,
			Comment:   review.Comment,
			Author: AuthorResponse{
				ID:   review.Author.ID,
				Name: review.Author.Name,
			},
			Service: ServiceResponse{
				ID:   review.Service.ID,
				Name: review.Service.Name,
				Tier: string(review.Service.Tier),
			},
			Business: BusinessResponse{
				ID:      review.Business.ID,
				Name:    review.Business.Name,
				Address: review.Business.Address,
			},
			CreatedAt: review.CreatedAt,
		})
	}

	resp := ListReviewsResponse{
		Reviews:    list,
		Pagination: handlers.NewPagination(result.Total, limit, offset),
	}
	if result.Rating != nil {
		resp.AverageRating = &RatingResponse{
			Average: result.Rating.Average,
			Count:   result.Rating.Count,
		}
	}
	return resp
}

// ParseFilter читает фильтр отзывов из query-параметров
func ParseFilter(r *http.Request, limit, offset uint64) (domain.ReviewsFilter, error) {
	filter := domain.ReviewsFilter{Limit: limit, Offset: offset}

	businessID, err := handlers.ParseInt64Param(r, "businessId")
	if err != nil {
		return filter, err
	}
	filter.BusinessID = businessID

	userID, err := handlers.ParseInt64Param(r, "userId")
	if err != nil {
		return filter, err
	}
	filter.UserID = userID

	if raw := r.URL.Query().Get("minRating"); raw != "" {
		minRating, err := strconv.Atoi(raw)
		if err != nil {
			return filter, err
		}
		filter.MinRating = minRating
	}

	if raw := r.URL.Query().Get("maxRating"); raw != "" {
		maxRating, err := strconv.Atoi(raw)
		if err != nil {
			return filter, err
		}
		filter.MaxRating = maxRating
	}

	return filter, nil
}
