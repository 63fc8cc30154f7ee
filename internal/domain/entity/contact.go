package entity

import "time"

// Contact representa una persona, opcionalmente vinculada a un Account.
// El email es único dentro de la organización.
type Contact struct {
	ID             int64
	OrganizationID int64
	AccountID      *int64 // nil = sin cuenta asociada
	Name           string
	Email          string
	Phone          string
	Title          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
