package update_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (с domain.FieldErrors в цепочке)
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому агенту
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrInsufficientSlots возвращается, когда для увеличения группы не хватает мест (с domain.FieldErrors в цепочке)
	ErrInsufficientSlots = errors.New("update_booking: not enough available slots")

	// ErrPersistenceConflict возвращается, когда транзакция не прошла из-за конкурентных изменений
	ErrPersistenceConflict = errors.New("update_booking: concurrent modification, retry the request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
