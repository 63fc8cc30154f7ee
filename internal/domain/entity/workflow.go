package entity

import "time"

// ActionKind es el tipo de acción que ejecuta una regla de workflow.
// Conjunto cerrado: el motor despacha por tabla, no por comparación de strings
// dispersas.
type ActionKind string

const (
	// ActionCreateActivity escribe una Activity de automatización.
	ActionCreateActivity ActionKind = "CREATE_ACTIVITY"
)

// IsValid reporta si el tipo de acción pertenece al conjunto cerrado.
func (k ActionKind) IsValid() bool {
	return k == ActionCreateActivity
}

// Workflow es una regla de automatización definida por el tenant: escucha un
// trigger y ejecuta una acción con parámetros serializados. Se crea y se
// borra; nunca se muta en sitio.
type Workflow struct {
	ID             int64
	OrganizationID int64
	Name           string
	Trigger        string     // nombre del evento, ej. "DEAL_WON"
	Action         ActionKind // ver constantes Action*
	ActionParams   string     // JSON serializado, ej. {"message":"..."}
	IsActive       bool
	CreatedAt      time.Time
}
