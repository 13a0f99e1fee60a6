package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProductRequest entrada para crear o actualizar un producto.
// name, sku y price son obligatorios; categoryId es opcional (nullable).
type SaveProductRequest struct {
	Name         string           `json:"name"`
	SKU          string           `json:"sku"`
	Description  string           `json:"description"`
	CategoryID   *string          `json:"categoryId"`
	Price        *decimal.Decimal `json:"price"`
	MinimumStock int64            `json:"minimumStock"`
	ImageURL     string           `json:"imageUrl"`
}

// ProductResponse salida de un producto; CategoryName viene del LEFT JOIN con categorías.
type ProductResponse struct {
	ProductID    string          `json:"productId"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Description  string          `json:"description"`
	CategoryID   *string         `json:"categoryId"`
	CategoryName *string         `json:"categoryName,omitempty"`
	Price        decimal.Decimal `json:"price"`
	MinimumStock int64           `json:"minimumStock"`
	ImageURL     string          `json:"imageUrl"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProductRefResponse referencia ligera para el selector del formulario de stock.
type ProductRefResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
}
