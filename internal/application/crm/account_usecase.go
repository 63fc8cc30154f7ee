// Package crm contiene los casos de uso de cuentas y contactos.
package crm

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/application/activity"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// AccountUseCase casos de uso para cuentas (empresas cliente).
type AccountUseCase struct {
	repo     repository.AccountRepository
	txRunner ImportTxRunner
	recorder *activity.Recorder
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(repo repository.AccountRepository, txRunner ImportTxRunner, recorder *activity.Recorder) *AccountUseCase {
	return &AccountUseCase{repo: repo, txRunner: txRunner, recorder: recorder}
}

// Create crea una cuenta nueva dentro de la organización.
func (uc *AccountUseCase) Create(orgID int64, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	account := &entity.Account{
		OrganizationID: orgID,
		Name:           in.Name,
		Industry:       in.Industry,
		Website:        in.Website,
		Address:        in.Address,
	}
	if err := uc.repo.Create(account); err != nil {
		return nil, err
	}
	uc.recorder.Record("Created account", account.Name, orgID)
	return toAccountResponse(account), nil
}

// List lista las cuentas de la organización, más recientes primero.
func (uc *AccountUseCase) List(orgID int64) ([]*dto.AccountResponse, error) {
	list, err := uc.repo.ListByOrg(orgID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AccountResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAccountResponse(a))
	}
	return out, nil
}

// Update reemplaza los campos de una cuenta de la organización.
// Una cuenta de otra organización se reporta como inexistente.
func (uc *AccountUseCase) Update(orgID, id int64, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.repo.GetByOrgAndID(orgID, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	account.Name = in.Name
	account.Industry = in.Industry
	account.Website = in.Website
	account.Address = in.Address
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	uc.recorder.Record("Updated account", account.Name, orgID)
	return toAccountResponse(account), nil
}

// Delete borra una cuenta de la organización.
func (uc *AccountUseCase) Delete(orgID, id int64) error {
	account, err := uc.repo.GetByOrgAndID(orgID, id)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(account.ID); err != nil {
		return err
	}
	uc.recorder.Record("Deleted account", account.Name, orgID)
	return nil
}

// Import crea un lote de cuentas en una sola transacción. Si una falla, no
// entra ninguna.
func (uc *AccountUseCase) Import(ctx context.Context, orgID int64, in dto.ImportAccountsRequest) (*dto.ImportAccountsResponse, error) {
	if len(in.Accounts) == 0 {
		return nil, domain.ErrInvalidInput
	}
	err := uc.txRunner.RunImport(ctx, func(accountRepo repository.AccountRepository) error {
		for _, a := range in.Accounts {
			if a.Name == "" {
				return domain.ErrInvalidInput
			}
			account := &entity.Account{
				OrganizationID: orgID,
				Name:           a.Name,
				Industry:       a.Industry,
				Website:        a.Website,
				Address:        a.Address,
			}
			if err := accountRepo.Create(account); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	count := len(in.Accounts)
	uc.recorder.Record("Imported accounts", fmt.Sprintf("%d accounts", count), orgID)
	return &dto.ImportAccountsResponse{
		Message: fmt.Sprintf("Successfully imported %d accounts", count),
		Count:   count,
	}, nil
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:             a.ID,
		OrganizationID: a.OrganizationID,
		Name:           a.Name,
		Industry:       a.Industry,
		Website:        a.Website,
		Address:        a.Address,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
