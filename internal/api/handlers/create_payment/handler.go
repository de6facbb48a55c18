package create_payment

import (
	"errors"
	"net/http"

	"github.com/washify/marketplace-service/internal/api/handlers"
	createPayment "github.com/washify/marketplace-service/internal/usecase/create_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgPaymentExists      = "платеж для этого бронирования уже существует"
	msgAmountMismatch     = "сумма платежа не совпадает с ценой услуги"
)

type Handler struct {
	useCase CreatePaymentUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /payments - Validation failed: %v", err)
		handlers.RespondErrorDetails(w, http.StatusBadRequest, msgInvalidRequestBody, err.Error())
		return
	}

	payment, err := h.useCase.Execute(r.Context(), &createPayment.Request{
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Provider:  req.Provider,
	})
	if err != nil {
		switch {
		case errors.Is(err, createPayment.ErrBookingNotFound):
			h.logger.Warn("POST /payments - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, createPayment.ErrPaymentExists):
			h.logger.Warn("POST /payments - Payment exists: booking_id=%d", req.BookingID)
			handlers.RespondConflict(w, msgPaymentExists)

		case errors.Is(err, createPayment.ErrAmountMismatch):
			h.logger.Warn("POST /payments - Amount mismatch: booking_id=%d, amount=%.2f", req.BookingID, req.Amount)
			handlers.RespondBadRequest(w, msgAmountMismatch)

		case errors.Is(err, createPayment.ErrInvalidInput):
			h.logger.Warn("POST /payments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /payments - Failed to create payment: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments - Payment created: payment_id=%d, booking_id=%d, status=%s",
		payment.ID, payment.BookingID, payment.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainPayment(payment))
}
