package dto

import "time"

// RegisterRequest entrada para registrar una organización nueva con su primer
// usuario (que queda como admin).
type RegisterRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,min=1,max=200"`
	Name             string `json:"name" validate:"required,min=1,max=200"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// AuthResponse token + usuario autenticado.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
