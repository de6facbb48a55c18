package businesses

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrOwnerNotFound возвращается, когда владелец не найден
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrNotAllowed возвращается, когда роль пользователя не позволяет
	// регистрировать бизнесы
	ErrNotAllowed = errors.New("user role cannot own businesses")

	// ErrDuplicateListing возвращается при регистрации бизнеса с тем же
	// именем рядом с уже существующим
	ErrDuplicateListing = errors.New("business with same name already exists nearby")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("businesses service: internal error")
)
