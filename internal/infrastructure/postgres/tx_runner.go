package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// Ensure TxRunner implements auth.SignupTxRunner and crm.ImportTxRunner.
var _ auth.SignupTxRunner = (*TxRunner)(nil)
var _ crm.ImportTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSignup inicia una transacción con repos de organización y usuario
// (registro: o se crean ambos o ninguno).
func (r *TxRunner) RunSignup(ctx context.Context, fn func(
	orgRepo repository.OrganizationRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orgRepo := NewOrganizationRepository(tx)
	userRepo := NewUserRepository(tx)

	if err := fn(orgRepo, userRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunImport inicia una transacción con el repo de cuentas atado a la tx
// (import masivo atómico).
func (r *TxRunner) RunImport(ctx context.Context, fn func(
	accountRepo repository.AccountRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewAccountRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
