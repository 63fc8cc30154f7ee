package auth

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// SignupTxRunner ejecuta el alta de organización + primer usuario dentro de
// una sola transacción. Lo implementa postgres.TxRunner.
type SignupTxRunner interface {
	RunSignup(ctx context.Context, fn func(
		orgRepo repository.OrganizationRepository,
		userRepo repository.UserRepository,
	) error) error
}
