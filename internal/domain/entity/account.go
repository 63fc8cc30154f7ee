package entity

import "time"

// Account representa una empresa cliente de la organización.
// El nombre es único dentro de la organización.
type Account struct {
	ID             int64
	OrganizationID int64
	Name           string
	Industry       string
	Website        string
	Address        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
