package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// ActivityRepository define el puerto de persistencia para Activity.
// Solo inserción y listado: el registro de auditoría es inmutable.
type ActivityRepository interface {
	Create(activity *entity.Activity) error
	// ListByOrg devuelve las actividades más recientes primero.
	// limit <= 0 significa sin tope.
	ListByOrg(orgID int64, limit int) ([]*entity.Activity, error)
}
