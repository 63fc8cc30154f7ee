package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// DealRepository define el puerto de persistencia para Deal.
type DealRepository interface {
	Create(deal *entity.Deal) error
	GetByOrgAndID(orgID, id int64) (*entity.Deal, error)
	// ListByOrg devuelve los deals de la organización con su Account,
	// ordenados del más reciente al más antiguo.
	ListByOrg(orgID int64) ([]*entity.DealWithAccount, error)
	Update(deal *entity.Deal) error
	Delete(id int64) error
}
