package packages

import "errors"

var (
	// ErrPackageNotFound возвращается, когда тур-пакет не найден
	ErrPackageNotFound = errors.New("packages: tour package not found")

	// ErrAccessDenied возвращается, когда пользователь не администратор
	ErrAccessDenied = errors.New("packages: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных (с domain.FieldErrors в цепочке)
	ErrInvalidInput = errors.New("packages: invalid input data")

	// ErrPersistenceConflict возвращается, когда транзакция не прошла из-за конкурентных изменений
	ErrPersistenceConflict = errors.New("packages: concurrent modification, retry the request")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("packages: internal error")
)
