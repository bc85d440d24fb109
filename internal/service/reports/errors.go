package reports

import "errors"

var (
	// ErrAccessDenied возвращается для пользователя без роли
	ErrAccessDenied = errors.New("reports: access denied")

	// ErrInvalidInput возвращается при некорректных фильтрах (с domain.FieldErrors в цепочке)
	ErrInvalidInput = errors.New("reports: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reports: internal error")
)
