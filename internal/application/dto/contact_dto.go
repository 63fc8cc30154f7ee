package dto

import "time"

// CreateContactRequest entrada para crear un contacto. AccountID es opcional;
// si no resuelve dentro de la organización se guarda sin cuenta.
type CreateContactRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Title     string `json:"title"`
	AccountID *int64 `json:"account_id"`
}

// UpdateContactRequest entrada para actualizar un contacto (reemplazo completo).
type UpdateContactRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Title     string `json:"title"`
	AccountID *int64 `json:"account_id"`
}

// ContactResponse salida de un contacto.
type ContactResponse struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	AccountID      *int64    `json:"account_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Title          string    `json:"title"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
