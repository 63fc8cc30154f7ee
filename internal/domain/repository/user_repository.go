package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
