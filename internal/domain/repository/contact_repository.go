package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// ContactRepository define el puerto de persistencia para Contact.
type ContactRepository interface {
	Create(contact *entity.Contact) error
	GetByOrgAndID(orgID, id int64) (*entity.Contact, error)
	ListByOrg(orgID int64) ([]*entity.Contact, error)
	Update(contact *entity.Contact) error
	Delete(id int64) error
}
