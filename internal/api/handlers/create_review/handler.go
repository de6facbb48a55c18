package create_review

import (
	"errors"
	"net/http"

	"github.com/washify/marketplace-service/internal/api/handlers"
	"github.com/washify/marketplace-service/internal/api/middleware"
	createReview "github.com/washify/marketplace-service/internal/usecase/create_review"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgUnauthorized        = "требуется авторизация"
	msgBookingNotFound     = "бронирование не найдено"
	msgBookingNotCompleted = "отзыв можно оставить только на завершенное бронирование"
	msgReviewExists        = "отзыв на это бронирование уже оставлен"
	msgPaymentNotSettled   = "платеж по бронированию еще не оплачен"
	msgInvalidRating       = "оценка должна быть от 1 до 5"
)

type Handler struct {
	useCase CreateReviewUseCase
	logger  Logger
}

func NewHandler(useCase CreateReviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /reviews - Validation failed: %v", err)
		handlers.RespondErrorDetails(w, http.StatusBadRequest, msgInvalidRequestBody, err.Error())
		return
	}

	review, err := h.useCase.Execute(r.Context(), &createReview.Request{
		UserID:    userID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, createReview.ErrBookingNotFound):
			h.logger.Warn("POST /reviews - Booking not found: booking_id=%d, user_id=%d", req.BookingID, userID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, createReview.ErrBookingNotCompleted):
			h.logger.Warn("POST /reviews - Booking not completed: booking_id=%d", req.BookingID)
			handlers.RespondBadRequest(w, msgBookingNotCompleted)

		case errors.Is(err, createReview.ErrReviewExists):
			h.logger.Warn("POST /reviews - Review exists: booking_id=%d", req.BookingID)
			handlers.RespondConflict(w, msgReviewExists)

		case errors.Is(err, createReview.ErrPaymentNotSettled):
			h.logger.Warn("POST /reviews - Payment not settled: booking_id=%d", req.BookingID)
			handlers.RespondBadRequest(w, msgPaymentNotSettled)

		case errors.Is(err, createReview.ErrInvalidRating):
			h.logger.Warn("POST /reviews - Invalid rating: rating=%d", req.Rating)
			handlers.RespondBadRequest(w, msgInvalidRating)

		default:
			h.logger.Error("POST /reviews - Failed to create review: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created: review_id=%d, booking_id=%d", review.ID, review.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainReview(review))
}
