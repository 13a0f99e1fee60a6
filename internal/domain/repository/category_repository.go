package repository

import "github.com/tu-usuario/inventario-stock/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Update y Delete reportan domain.ErrNotFound cuando no afectan filas.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id string) error
	Count() (int64, error)
}
