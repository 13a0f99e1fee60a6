package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-stock/internal/application/dto"
	"github.com/tu-usuario/inventario-stock/internal/domain"
	"github.com/tu-usuario/inventario-stock/internal/domain/entity"
	"github.com/tu-usuario/inventario-stock/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
// El stock no se toca aquí; se maneja vía movimientos en el caso de uso de inventario.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// validate aplica las reglas comunes de create/update: name, sku y price obligatorios, price >= 0.
// No se exige unicidad de SKU en esta capa (ver notas de diseño).
func validate(in dto.SaveProductRequest) error {
	if in.Name == "" || in.SKU == "" || in.Price == nil {
		return domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if in.MinimumStock < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create crea un producto.
func (uc *ProductUseCase) Create(in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		SKU:          in.SKU,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		Price:        *in.Price,
		MinimumStock: in.MinimumStock,
		ImageURL:     in.ImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product, nil), nil
}

// Update reemplaza los campos editables del producto (PUT con semántica de reemplazo).
// ErrNotFound si el UPDATE no afecta filas.
func (uc *ProductUseCase) Update(id string, in dto.SaveProductRequest) error {
	if err := validate(in); err != nil {
		return err
	}
	product := &entity.Product{
		ID:           id,
		Name:         in.Name,
		SKU:          in.SKU,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		Price:        *in.Price,
		MinimumStock: in.MinimumStock,
		ImageURL:     in.ImageURL,
		UpdatedAt:    time.Now(),
	}
	return uc.repo.Update(product)
}

// Delete elimina un producto. ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List devuelve todos los productos con el nombre de su categoría (LEFT JOIN).
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(&p.Product, p.CategoryName))
	}
	return out, nil
}

// ListRefs devuelve referencias ligeras (id, nombre, sku) para el selector del formulario de stock.
func (uc *ProductUseCase) ListRefs() ([]dto.ProductRefResponse, error) {
	refs, err := uc.repo.ListRefs()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductRefResponse, 0, len(refs))
	for _, r := range refs {
		out = append(out, dto.ProductRefResponse{ProductID: r.ID, Name: r.Name, SKU: r.SKU})
	}
	return out, nil
}

func toProductResponse(p *entity.Product, categoryName *string) *dto.ProductResponse {
	return &dto.ProductResponse{
		ProductID:    p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		CategoryName: categoryName,
		Price:        p.Price,
		MinimumStock: p.MinimumStock,
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
