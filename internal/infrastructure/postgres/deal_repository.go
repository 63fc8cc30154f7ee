package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.DealRepository = (*DealRepo)(nil)

// DealRepo implementación de DealRepository (usable con pool o tx).
type DealRepo struct {
	q Querier
}

// NewDealRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDealRepository(q Querier) *DealRepo {
	return &DealRepo{q: q}
}

// Create persiste un deal nuevo con sus campos calculados.
func (r *DealRepo) Create(deal *entity.Deal) error {
	query := `
		INSERT INTO deals (organization_id, account_id, title, value, stage, win_probability, ai_insight)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		deal.OrganizationID, deal.AccountID, deal.Title, deal.Value, deal.Stage, deal.WinProbability, deal.AIInsight,
	).Scan(&deal.ID, &deal.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert deal: %w", err)
	}
	return nil
}

// GetByOrgAndID obtiene un deal por organización e ID.
func (r *DealRepo) GetByOrgAndID(orgID, id int64) (*entity.Deal, error) {
	query := `
		SELECT id, organization_id, account_id, title, value, stage, win_probability, ai_insight, created_at
		FROM deals WHERE organization_id = $1 AND id = $2`
	var d entity.Deal
	err := r.q.QueryRow(context.Background(), query, orgID, id).Scan(
		&d.ID, &d.OrganizationID, &d.AccountID, &d.Title, &d.Value, &d.Stage, &d.WinProbability, &d.AIInsight, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deal: %w", err)
	}
	return &d, nil
}

// ListByOrg lista los deals de la organización con su cuenta, más recientes primero.
func (r *DealRepo) ListByOrg(orgID int64) ([]*entity.DealWithAccount, error) {
	query := `
		SELECT d.id, d.organization_id, d.account_id, d.title, d.value, d.stage,
		       d.win_probability, d.ai_insight, d.created_at,
		       a.id, a.organization_id, a.name, a.industry, a.website, a.address, a.created_at, a.updated_at
		FROM deals d
		JOIN accounts a ON a.id = d.account_id
		WHERE d.organization_id = $1
		ORDER BY d.created_at DESC, d.id DESC`
	rows, err := r.q.Query(context.Background(), query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	defer rows.Close()
	var list []*entity.DealWithAccount
	for rows.Next() {
		var d entity.DealWithAccount
		err := rows.Scan(
			&d.ID, &d.OrganizationID, &d.AccountID, &d.Title, &d.Value, &d.Stage,
			&d.WinProbability, &d.AIInsight, &d.CreatedAt,
			&d.Account.ID, &d.Account.OrganizationID, &d.Account.Name, &d.Account.Industry,
			&d.Account.Website, &d.Account.Address, &d.Account.CreatedAt, &d.Account.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan deal: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza título, valor, etapa y cuenta del deal. La probabilidad de
// cierre y el insight no se tocan: conservan lo calculado al crear.
func (r *DealRepo) Update(deal *entity.Deal) error {
	query := `
		UPDATE deals SET title = $2, value = $3, stage = $4, account_id = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		deal.ID, deal.Title, deal.Value, deal.Stage, deal.AccountID,
	)
	if err != nil {
		return fmt.Errorf("update deal: %w", err)
	}
	return nil
}

// Delete elimina un deal por ID.
func (r *DealRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM deals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete deal: %w", err)
	}
	return nil
}
