package create_review

import (
	"time"

	"github.com/washify/marketplace-service/internal/domain"
)

// CreateReviewRequest тело запроса создания отзыва
type CreateReviewRequest struct {
	BookingID int64   `json:"bookingId" validate:"required,gt=0"`
	Rating    int     `json:"rating" validate:"required,min=1,max=5"`
	Comment   *string `json:"comment" validate:"omitempty,max=2000"`
}

// ReviewResponse тело ответа с созданным отзывом
type ReviewResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	BookingID int64     `json:"bookingId"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainReview конвертирует доменный отзыв в ответ
func FromDomainReview(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		BookingID: review.BookingID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}
