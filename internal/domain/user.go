package domain

import "time"

// Role роль пользователя
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

// User пользователь системы (администратор или агент)
type User struct {
	ID    int64
	Name  string
	Email string
	Role  Role

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) IsAgent() bool {
	return u != nil && u.Role == RoleAgent
}

// CanManagePackages только администратор создает, меняет и удаляет тур-пакеты
func (u *User) CanManagePackages() bool {
	return u.IsAdmin()
}

// CanCreateBookings бронировать могут администраторы и агенты
func (u *User) CanCreateBookings() bool {
	return u.IsAdmin() || u.IsAgent()
}

// CanAccessBooking администратор видит все бронирования, агент - только свои
func (u *User) CanAccessBooking(b *Booking) bool {
	if u == nil || b == nil {
		return false
	}
	if u.IsAdmin() {
		return true
	}
	return u.IsAgent() && b.AgentID == u.ID
}

// ScopeAgentID возвращает ID агента, которым ограничивается выборка
// Для администратора nil - без ограничений
func (u *User) ScopeAgentID() *int64 {
	if u.IsAdmin() {
		return nil
	}
	id := u.ID
	return &id
}
