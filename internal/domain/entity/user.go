package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario del sistema (pertenece a una Organization).
type User struct {
	ID             int64
	OrganizationID int64
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Name           string
	Role           string // admin, user
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
