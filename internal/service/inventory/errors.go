package inventory

import "errors"

var (
	// ErrPackageNotFound возвращается, когда тур-пакет не найден
	ErrPackageNotFound = errors.New("inventory: package not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("inventory: internal error")
)
