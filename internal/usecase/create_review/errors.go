package create_review

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено или
	// принадлежит другому пользователю. Намеренно не различаются, чтобы
	// не раскрывать чужие бронирования.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingNotCompleted возвращается, когда бронирование еще
	// не завершено
	ErrBookingNotCompleted = errors.New("booking is not completed")

	// ErrReviewExists возвращается, когда отзыв на бронирование уже есть
	ErrReviewExists = errors.New("review already exists for booking")

	// ErrPaymentNotSettled возвращается, когда платеж существует,
	// но не оплачен
	ErrPaymentNotSettled = errors.New("payment is not settled")

	// ErrInvalidRating возвращается при оценке вне диапазона 1..5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("create_review: internal error")
)
