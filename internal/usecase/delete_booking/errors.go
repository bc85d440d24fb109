package delete_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном ID бронирования
	ErrInvalidInput = errors.New("delete_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("delete_booking: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому агенту
	ErrAccessDenied = errors.New("delete_booking: access denied")

	// ErrPersistenceConflict возвращается, когда транзакция не прошла из-за конкурентных изменений
	ErrPersistenceConflict = errors.New("delete_booking: concurrent modification, retry the request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_booking: internal error")
)
