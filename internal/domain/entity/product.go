package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// CategoryID es nullable: borrar una categoría no borra sus productos, solo anula el vínculo.
// El stock no vive aquí; se maneja en InventoryRecord vía movimientos.
type Product struct {
	ID           string
	Name         string
	SKU          string
	Description  string
	CategoryID   *string
	Price        decimal.Decimal // precio de venta, >= 0
	MinimumStock int64           // umbral de alerta de stock bajo (default 0)
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductWithCategory producto más el nombre de su categoría (LEFT JOIN en el listado).
type ProductWithCategory struct {
	Product
	CategoryName *string
}

// ProductRef referencia ligera (id, nombre, sku) para el selector de productos del formulario de stock.
type ProductRef struct {
	ID   string
	Name string
	SKU  string
}
