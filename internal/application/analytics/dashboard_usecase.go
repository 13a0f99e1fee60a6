package analytics

import (
	"context"

	"github.com/tu-usuario/inventario-stock/internal/application/dto"
	"github.com/tu-usuario/inventario-stock/internal/domain/repository"
)

// DashboardUseCase compone los agregados del dashboard a partir del estado actual
// (no del log de movimientos). Cada agregado es una lectura puntual; dos agregados
// pueden reflejar instantes distintos bajo escrituras concurrentes.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetSummary devuelve alertas de stock bajo (quantity <= minimumStock, inclusive),
// valor total del inventario (SUM price*quantity) y conteos de productos y categorías.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	lowStock, err := uc.repo.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	totalValue, err := uc.repo.TotalInventoryValue(ctx)
	if err != nil {
		return nil, err
	}
	totalProducts, err := uc.repo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	totalCategories, err := uc.repo.CountCategories(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LowStockItemDTO, 0, len(lowStock))
	for _, row := range lowStock {
		items = append(items, dto.LowStockItemDTO{
			ProductID:    row.ProductID,
			Name:         row.Name,
			SKU:          row.SKU,
			MinimumStock: row.MinimumStock,
			Quantity:     row.Quantity,
		})
	}

	return &dto.DashboardResponse{
		LowStock:        items,
		TotalValue:      totalValue,
		TotalProducts:   totalProducts,
		TotalCategories: totalCategories,
	}, nil
}
