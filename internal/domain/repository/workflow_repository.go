package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// WorkflowRepository define el puerto de persistencia para Workflow.
type WorkflowRepository interface {
	Create(workflow *entity.Workflow) error
	ListByOrg(orgID int64) ([]*entity.Workflow, error)
	// ListActiveByTrigger devuelve las reglas activas de la organización
	// cuyo trigger coincide exactamente.
	ListActiveByTrigger(orgID int64, trigger string) ([]*entity.Workflow, error)
	// DeleteByOrg borra la regla solo si pertenece a la organización.
	// Cero filas afectadas no es un error.
	DeleteByOrg(orgID, id int64) error
}
