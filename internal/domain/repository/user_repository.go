package repository

import "github.com/tu-usuario/inventario-stock/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	GetByUsernameOrEmail(username, email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
