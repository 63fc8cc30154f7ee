package entity

import "time"

// Planes disponibles para una organización.
const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// Organization representa el tenant del sistema. Toda entidad del CRM
// pertenece a exactamente una organización.
type Organization struct {
	ID        int64
	Name      string
	Plan      string // free, pro, enterprise
	CreatedAt time.Time
}
