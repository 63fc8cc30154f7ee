package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación de OrganizationRepository (usable con pool o tx).
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

// Create persiste una organización nueva y asigna ID y timestamp del servidor.
func (r *OrganizationRepo) Create(org *entity.Organization) error {
	query := `
		INSERT INTO organizations (name, plan)
		VALUES ($1, $2)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query, org.Name, org.Plan).
		Scan(&org.ID, &org.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID.
func (r *OrganizationRepo) GetByID(id int64) (*entity.Organization, error) {
	query := `
		SELECT id, name, plan, created_at
		FROM organizations WHERE id = $1`
	var o entity.Organization
	err := r.q.QueryRow(context.Background(), query, id).
		Scan(&o.ID, &o.Name, &o.Plan, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &o, nil
}
