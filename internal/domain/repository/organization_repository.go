package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// OrganizationRepository define el puerto de persistencia para Organization.
type OrganizationRepository interface {
	Create(org *entity.Organization) error
	GetByID(id int64) (*entity.Organization, error)
}
