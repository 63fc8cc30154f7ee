package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación de ActivityRepository (usable con pool o tx).
// Solo inserta y lista: la tabla de auditoría es append-only.
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// Create inserta una entrada de auditoría con ID y timestamp del servidor.
func (r *ActivityRepo) Create(activity *entity.Activity) error {
	query := `
		INSERT INTO activities (organization_id, action, target)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		activity.OrganizationID, activity.Action, activity.Target,
	).Scan(&activity.ID, &activity.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListByOrg lista las actividades de la organización, más recientes primero.
// limit <= 0 significa sin tope.
func (r *ActivityRepo) ListByOrg(orgID int64, limit int) ([]*entity.Activity, error) {
	query := `
		SELECT id, organization_id, action, target, created_at
		FROM activities WHERE organization_id = $1 ORDER BY created_at DESC, id DESC`
	args := []any{orgID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	var list []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.OrganizationID, &a.Action, &a.Target, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
