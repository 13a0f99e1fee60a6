package dto

import "github.com/shopspring/decimal"

// LowStockItemDTO producto en o por debajo de su umbral mínimo.
type LowStockItemDTO struct {
	ProductID    string `json:"productId"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	MinimumStock int64  `json:"minimumStock"`
	Quantity     int64  `json:"quantity"`
}

// DashboardResponse respuesta de GET /inventory/dashboard.
// Cada agregado es una lectura puntual independiente (sin snapshot entre ellos).
type DashboardResponse struct {
	LowStock        []LowStockItemDTO `json:"lowStock"`
	TotalValue      decimal.Decimal   `json:"totalValue"`
	TotalProducts   int64             `json:"totalProducts"`
	TotalCategories int64             `json:"totalCategories"`
}
