package dto

import "time"

// CreateWorkflowRequest entrada para definir una regla de automatización.
// ActionParams se serializa a JSON antes de persistir.
type CreateWorkflowRequest struct {
	Name         string            `json:"name" validate:"required,min=1,max=200"`
	Trigger      string            `json:"trigger" validate:"required"`
	Action       string            `json:"action" validate:"required"`
	ActionParams map[string]string `json:"action_params"`
}

// WorkflowResponse salida de una regla de automatización.
type WorkflowResponse struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	Name           string    `json:"name"`
	Trigger        string    `json:"trigger"`
	Action         string    `json:"action"`
	ActionParams   string    `json:"action_params"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}
