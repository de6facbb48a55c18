package catalog

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrAccessDenied возвращается, когда пользователь не владеет бизнесом
	ErrAccessDenied = errors.New("access denied")

	// ErrDuplicateName возвращается, когда у бизнеса уже есть услуга
	// с таким именем
	ErrDuplicateName = errors.New("service name already exists in business")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog service: internal error")
)
