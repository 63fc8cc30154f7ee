package crm

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ImportTxRunner ejecuta el import masivo de cuentas dentro de una sola
// transacción: o entran todas o no entra ninguna. Lo implementa
// postgres.TxRunner.
type ImportTxRunner interface {
	RunImport(ctx context.Context, fn func(accountRepo repository.AccountRepository) error) error
}
