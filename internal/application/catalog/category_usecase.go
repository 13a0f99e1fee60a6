package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-stock/internal/application/dto"
	"github.com/tu-usuario/inventario-stock/internal/domain"
	"github.com/tu-usuario/inventario-stock/internal/domain/entity"
	"github.com/tu-usuario/inventario-stock/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. El nombre es obligatorio.
func (uc *CategoryUseCase) Create(in dto.SaveCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update actualiza nombre y descripción. ErrNotFound si el UPDATE no afecta filas.
func (uc *CategoryUseCase) Update(id string, in dto.SaveCategoryRequest) error {
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	category := &entity.Category{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		UpdatedAt:   time.Now(),
	}
	return uc.repo.Update(category)
}

// Delete elimina una categoría. ErrNotFound si no existe.
// No impide borrar una categoría referenciada: el FK anula el vínculo de sus productos.
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		CategoryID:  c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
