package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.WorkflowRepository = (*WorkflowRepo)(nil)

// WorkflowRepo implementación de WorkflowRepository (usable con pool o tx).
type WorkflowRepo struct {
	q Querier
}

// NewWorkflowRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkflowRepository(q Querier) *WorkflowRepo {
	return &WorkflowRepo{q: q}
}

// Create persiste una regla nueva.
func (r *WorkflowRepo) Create(workflow *entity.Workflow) error {
	query := `
		INSERT INTO workflows (organization_id, name, trigger, action, action_params, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		workflow.OrganizationID, workflow.Name, workflow.Trigger, workflow.Action, workflow.ActionParams, workflow.IsActive,
	).Scan(&workflow.ID, &workflow.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert workflow: %w", err)
	}
	return nil
}

// ListByOrg lista las reglas de la organización, más recientes primero.
func (r *WorkflowRepo) ListByOrg(orgID int64) ([]*entity.Workflow, error) {
	query := `
		SELECT id, organization_id, name, trigger, action, action_params, is_active, created_at
		FROM workflows WHERE organization_id = $1 ORDER BY created_at DESC, id DESC`
	return r.list(query, orgID)
}

// ListActiveByTrigger lista las reglas activas cuyo trigger coincide.
func (r *WorkflowRepo) ListActiveByTrigger(orgID int64, trigger string) ([]*entity.Workflow, error) {
	query := `
		SELECT id, organization_id, name, trigger, action, action_params, is_active, created_at
		FROM workflows
		WHERE organization_id = $1 AND trigger = $2 AND is_active
		ORDER BY created_at, id`
	return r.list(query, orgID, trigger)
}

// DeleteByOrg borra la regla solo si pertenece a la organización.
// Cero filas afectadas no es un error.
func (r *WorkflowRepo) DeleteByOrg(orgID, id int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM workflows WHERE organization_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("delete workflow: %w", err)
	}
	return nil
}

func (r *WorkflowRepo) list(query string, args ...any) ([]*entity.Workflow, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	defer rows.Close()
	var list []*entity.Workflow
	for rows.Next() {
		var wf entity.Workflow
		if err := rows.Scan(&wf.ID, &wf.OrganizationID, &wf.Name, &wf.Trigger, &wf.Action, &wf.ActionParams, &wf.IsActive, &wf.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan workflow: %w", err)
		}
		list = append(list, &wf)
	}
	return list, rows.Err()
}
