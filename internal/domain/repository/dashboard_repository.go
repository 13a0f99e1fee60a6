package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// LowStockRow producto cuya existencia está en o por debajo de su umbral mínimo.
type LowStockRow struct {
	ProductID    string
	Name         string
	SKU          string
	MinimumStock int64
	Quantity     int64
}

// DashboardRepository consultas de solo lectura para los agregados del dashboard.
// Cada método es una lectura puntual; no hay garantía de consistencia entre agregados
// bajo escrituras concurrentes.
type DashboardRepository interface {
	LowStock(ctx context.Context) ([]*LowStockRow, error)
	// TotalInventoryValue devuelve SUM(price * quantity) sobre productos con fila de inventario.
	TotalInventoryValue(ctx context.Context) (decimal.Decimal, error)
	CountProducts(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
}
