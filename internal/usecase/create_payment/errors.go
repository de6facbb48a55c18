package create_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrPaymentExists возвращается, когда у бронирования уже есть платеж
	ErrPaymentExists = errors.New("payment already exists for booking")

	// ErrAmountMismatch возвращается, когда сумма платежа не совпадает
	// с ценой услуги
	ErrAmountMismatch = errors.New("payment amount does not match service price")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("create_payment: internal error")
)
