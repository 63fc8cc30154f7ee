// Package pipeline orquesta el ciclo de vida de los deals: validación de
// tenant, scoring determinista y registro de auditoría.
package pipeline

import (
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/application/activity"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/internal/domain/scoring"
)

// DealUseCase casos de uso del pipeline de ventas.
//
// Nota: las mutaciones de deals NO disparan el motor de workflows. El trigger
// entre cambios de etapa y automatización está pendiente de definición de
// producto (ver DESIGN.md).
type DealUseCase struct {
	repo        repository.DealRepository
	accountRepo repository.AccountRepository
	recorder    *activity.Recorder
}

// NewDealUseCase construye el caso de uso.
func NewDealUseCase(repo repository.DealRepository, accountRepo repository.AccountRepository, recorder *activity.Recorder) *DealUseCase {
	return &DealUseCase{repo: repo, accountRepo: accountRepo, recorder: recorder}
}

// Create valida la cuenta dentro de la organización, calcula la probabilidad
// de cierre y persiste el deal. La etapa por defecto es New.
func (uc *DealUseCase) Create(orgID int64, in dto.CreateDealRequest) (*dto.DealResponse, error) {
	if in.Title == "" || in.AccountID == 0 {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.accountRepo.GetByOrgAndID(orgID, in.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrInvalidReference
	}

	stage := entity.Stage(in.Stage)
	if in.Stage == "" {
		stage = entity.StageNew
	}
	if !stage.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	prob, insight := scoring.Score(in.Value, stage)
	deal := &entity.Deal{
		OrganizationID: orgID,
		AccountID:      account.ID,
		Title:          in.Title,
		Value:          in.Value,
		Stage:          stage,
		WinProbability: prob,
		AIInsight:      insight,
	}
	if err := uc.repo.Create(deal); err != nil {
		return nil, err
	}
	uc.recorder.Record("Created deal", deal.Title, orgID)
	return toDealResponse(deal, account), nil
}

// Update reemplaza título, valor, etapa y cuenta del deal (los cuatro campos
// son obligatorios; no hay patch parcial). La probabilidad de cierre NO se
// recalcula: conserva el valor asignado al crear el deal.
func (uc *DealUseCase) Update(orgID, id int64, in dto.UpdateDealRequest) (*dto.DealResponse, error) {
	if in.Title == "" || in.AccountID == 0 {
		return nil, domain.ErrInvalidInput
	}
	stage := entity.Stage(in.Stage)
	if !stage.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	deal, err := uc.repo.GetByOrgAndID(orgID, id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, domain.ErrNotFound
	}
	account, err := uc.accountRepo.GetByOrgAndID(orgID, in.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrInvalidReference
	}

	deal.Title = in.Title
	deal.Value = in.Value
	deal.Stage = stage
	deal.AccountID = account.ID
	if err := uc.repo.Update(deal); err != nil {
		return nil, err
	}
	uc.recorder.Record("Updated deal", fmt.Sprintf("%s (%s)", deal.Title, deal.Stage), orgID)
	return toDealResponse(deal, account), nil
}

// Delete borra un deal de la organización. Un deal de otra organización se
// reporta como inexistente.
func (uc *DealUseCase) Delete(orgID, id int64) error {
	deal, err := uc.repo.GetByOrgAndID(orgID, id)
	if err != nil {
		return err
	}
	if deal == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(deal.ID); err != nil {
		return err
	}
	uc.recorder.Record("Deleted deal", fmt.Sprintf("ID: %d", deal.ID), orgID)
	return nil
}

// List devuelve los deals de la organización con el resumen de su cuenta,
// más recientes primero.
func (uc *DealUseCase) List(orgID int64) ([]*dto.DealResponse, error) {
	list, err := uc.repo.ListByOrg(orgID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DealResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDealResponse(&d.Deal, &d.Account))
	}
	return out, nil
}

func toDealResponse(d *entity.Deal, account *entity.Account) *dto.DealResponse {
	resp := &dto.DealResponse{
		ID:             d.ID,
		OrganizationID: d.OrganizationID,
		AccountID:      d.AccountID,
		Title:          d.Title,
		Value:          d.Value,
		Stage:          string(d.Stage),
		WinProbability: d.WinProbability,
		AIInsight:      d.AIInsight,
		CreatedAt:      d.CreatedAt,
	}
	if account != nil {
		resp.Account = &dto.AccountSummary{
			ID:       account.ID,
			Name:     account.Name,
			Industry: account.Industry,
		}
	}
	return resp
}
