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

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una cuenta nueva. El nombre es único por organización.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (organization_id, name, industry, website, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		account.OrganizationID, account.Name, account.Industry, account.Website, account.Address,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByOrgAndID obtiene una cuenta por organización e ID.
func (r *AccountRepo) GetByOrgAndID(orgID, id int64) (*entity.Account, error) {
	query := `
		SELECT id, organization_id, name, industry, website, address, created_at, updated_at
		FROM accounts WHERE organization_id = $1 AND id = $2`
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, orgID, id).Scan(
		&a.ID, &a.OrganizationID, &a.Name, &a.Industry, &a.Website, &a.Address, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// ListByOrg lista las cuentas de la organización, más recientes primero.
func (r *AccountRepo) ListByOrg(orgID int64) ([]*entity.Account, error) {
	query := `
		SELECT id, organization_id, name, industry, website, address, created_at, updated_at
		FROM accounts WHERE organization_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.OrganizationID, &a.Name, &a.Industry, &a.Website, &a.Address, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza los campos de una cuenta.
func (r *AccountRepo) Update(account *entity.Account) error {
	query := `
		UPDATE accounts SET name = $2, industry = $3, website = $4, address = $5, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Name, account.Industry, account.Website, account.Address,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// Delete elimina una cuenta por ID.
func (r *AccountRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
