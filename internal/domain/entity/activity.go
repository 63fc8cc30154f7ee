package entity

import "time"

// Activity es un registro de auditoría inmutable. Solo se inserta y se lista;
// nunca se actualiza ni se borra individualmente.
type Activity struct {
	ID             int64
	OrganizationID int64
	Action         string // verbo, ej. "Created deal"
	Target         string // descripción libre del objeto afectado
	CreatedAt      time.Time
}
