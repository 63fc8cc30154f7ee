package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas read-only de agregación para el dashboard.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountAccounts cuenta las cuentas de la organización.
func (r *StatsRepo) CountAccounts(ctx context.Context, orgID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM accounts WHERE organization_id = $1`, orgID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return n, nil
}

// CountContacts cuenta los contactos de la organización.
func (r *StatsRepo) CountContacts(ctx context.Context, orgID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM contacts WHERE organization_id = $1`, orgID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return n, nil
}

// DealMetricsByStage agrega cantidad y valor total de deals por etapa.
func (r *StatsRepo) DealMetricsByStage(ctx context.Context, orgID int64) ([]repository.StageMetrics, error) {
	query := `
		SELECT stage, COUNT(*), COALESCE(SUM(value), 0)
		FROM deals WHERE organization_id = $1 GROUP BY stage`
	rows, err := r.q.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("deal metrics by stage: %w", err)
	}
	defer rows.Close()
	var out []repository.StageMetrics
	for rows.Next() {
		var m repository.StageMetrics
		if err := rows.Scan(&m.Stage, &m.Count, &m.Value); err != nil {
			return nil, fmt.Errorf("scan stage metrics: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
