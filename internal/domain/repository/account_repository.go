package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// AccountRepository define el puerto de persistencia para Account.
// Toda lectura y escritura va filtrada por organización.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByOrgAndID(orgID, id int64) (*entity.Account, error)
	ListByOrg(orgID int64) ([]*entity.Account, error)
	Update(account *entity.Account) error
	Delete(id int64) error
}
