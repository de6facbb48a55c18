package domain

import "time"

// Rating bounds for reviews
const (
	MinRating = 1
	MaxRating = 5
)

// Review represents a review linked one-to-one to a completed booking
type Review struct {
	ID        int64
	UserID    int64
	BookingID int64
	Rating    int
	Comment   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReviewsFilter фильтр выборки отзывов
type ReviewsFilter struct {
	BusinessID *int64 // Фильтр по бизнесу (через бронирование)
	UserID     *int64
	MinRating  int
	MaxRating  int
	Limit      uint64
	Offset     uint64
}

// ReviewDetails отзыв с карточками автора, услуги и бизнеса
type ReviewDetails struct {
	Review
	Author   ReviewAuthor
	Service  ServiceSummary
	Business BusinessSummary
}

// ReviewAuthor автор отзыва; email намеренно не раскрывается
type ReviewAuthor struct {
	ID   int64
	Name string
}

// RatingSummary агрегат рейтинга бизнеса
type RatingSummary struct {
	Average float64 // Округлено до 1 знака
	Count   int64
}
