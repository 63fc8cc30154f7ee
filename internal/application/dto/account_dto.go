package dto

import "time"

// CreateAccountRequest entrada para crear una cuenta (empresa cliente).
type CreateAccountRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Industry string `json:"industry"`
	Website  string `json:"website"`
	Address  string `json:"address"`
}

// UpdateAccountRequest entrada para actualizar una cuenta (reemplazo completo).
type UpdateAccountRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Industry string `json:"industry"`
	Website  string `json:"website"`
	Address  string `json:"address"`
}

// AccountResponse salida de una cuenta.
type AccountResponse struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	Name           string    `json:"name"`
	Industry       string    `json:"industry"`
	Website        string    `json:"website"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ImportAccountsRequest lote de cuentas a importar en una sola transacción.
type ImportAccountsRequest struct {
	Accounts []CreateAccountRequest `json:"accounts" validate:"required,min=1"`
}

// ImportAccountsResponse resultado del import masivo.
type ImportAccountsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
