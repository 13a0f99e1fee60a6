package repository

import "github.com/tu-usuario/inventario-stock/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Update y Delete reportan domain.ErrNotFound cuando no afectan filas.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*entity.ProductWithCategory, error)
	ListRefs() ([]*entity.ProductRef, error)
	Delete(id string) error
	Count() (int64, error)
}
