package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrInsufficientSlots возвращается, когда в пакете меньше свободных мест, чем запрошено
	ErrInsufficientSlots = errors.New("domain: insufficient available slots")

	// ErrInvalidSlotCount возвращается при попытке занять или освободить меньше одного места
	ErrInvalidSlotCount = errors.New("domain: slot count must be at least 1")
)

// FieldErrors ошибки валидации по полям запроса: поле -> сообщение
type FieldErrors map[string]string

// Add добавляет ошибку, если для поля её ещё нет
func (e FieldErrors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// Error склеивает ошибки в детерминированном порядке
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

// Empty returns true if there are no field errors
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}
