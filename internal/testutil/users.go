package testutil

import "github.com/m04kA/SMC-TourBookingService/internal/domain"

// Admin администратор с указанным ID
func Admin(id int64) *domain.User {
	return &domain.User{ID: id, Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin}
}

// Agent агент с указанным ID
func Agent(id int64) *domain.User {
	return &domain.User{ID: id, Name: "Agent", Email: "agent@example.com", Role: domain.RoleAgent}
}
