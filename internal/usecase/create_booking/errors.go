package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (с domain.FieldErrors в цепочке)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrAccessDenied возвращается, когда пользователь не может создавать бронирования
	ErrAccessDenied = errors.New("create_booking: access denied")

	// ErrPackageNotFound возвращается, когда тур-пакет не найден
	ErrPackageNotFound = errors.New("create_booking: tour package not found")

	// ErrInsufficientSlots возвращается, когда в пакете не хватает мест (с domain.FieldErrors в цепочке)
	ErrInsufficientSlots = errors.New("create_booking: not enough available slots")

	// ErrPersistenceConflict возвращается, когда транзакция не прошла из-за конкурентных изменений
	ErrPersistenceConflict = errors.New("create_booking: concurrent modification, retry the request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
