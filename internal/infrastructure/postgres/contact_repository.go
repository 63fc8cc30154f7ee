package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación de ContactRepository (usable con pool o tx).
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

// Create persiste un contacto nuevo. El email es único por organización.
func (r *ContactRepo) Create(contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (organization_id, account_id, name, email, phone, title)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		contact.OrganizationID, contact.AccountID, contact.Name, contact.Email, contact.Phone, contact.Title,
	).Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// GetByOrgAndID obtiene un contacto por organización e ID.
func (r *ContactRepo) GetByOrgAndID(orgID, id int64) (*entity.Contact, error) {
	query := `
		SELECT id, organization_id, account_id, name, email, phone, title, created_at, updated_at
		FROM contacts WHERE organization_id = $1 AND id = $2`
	var c entity.Contact
	err := r.q.QueryRow(context.Background(), query, orgID, id).Scan(
		&c.ID, &c.OrganizationID, &c.AccountID, &c.Name, &c.Email, &c.Phone, &c.Title, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &c, nil
}

// ListByOrg lista los contactos de la organización, más recientes primero.
func (r *ContactRepo) ListByOrg(orgID int64) ([]*entity.Contact, error) {
	query := `
		SELECT id, organization_id, account_id, name, email, phone, title, created_at, updated_at
		FROM contacts WHERE organization_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contact
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(&c.ID, &c.OrganizationID, &c.AccountID, &c.Name, &c.Email, &c.Phone, &c.Title, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los campos de un contacto.
func (r *ContactRepo) Update(contact *entity.Contact) error {
	query := `
		UPDATE contacts SET account_id = $2, name = $3, email = $4, phone = $5, title = $6, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		contact.ID, contact.AccountID, contact.Name, contact.Email, contact.Phone, contact.Title,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

// Delete elimina un contacto por ID.
func (r *ContactRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
