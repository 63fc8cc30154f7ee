package dto

import "time"

// ActivityResponse salida de una entrada del registro de auditoría.
type ActivityResponse struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	Action         string    `json:"action"`
	Target         string    `json:"target"`
	CreatedAt      time.Time `json:"created_at"`
}
