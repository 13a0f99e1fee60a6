package entity

import "time"

// InventoryRecord representa la existencia actual de un producto (una fila por producto).
// Se crea perezosamente con cantidad 0 en el primer movimiento; Quantity nunca es negativa.
// Solo el caso de uso de ajuste de stock la muta.
type InventoryRecord struct {
	ID        string
	ProductID string
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InventoryLevel fila del listado de inventario: existencia más datos del producto (JOIN).
type InventoryLevel struct {
	ID           string
	ProductID    string
	Quantity     int64
	ProductName  string
	SKU          string
	MinimumStock int64
}
