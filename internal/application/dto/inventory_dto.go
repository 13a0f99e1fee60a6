package dto

// AdjustStockRequest body para POST /inventory/update.
// type es ADD o REMOVE; quantity es un entero estrictamente positivo.
type AdjustStockRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
	Type      string `json:"type"`
	Notes     string `json:"notes"`
}

// InventoryLevelResponse fila de GET /inventory: existencia más datos del producto.
type InventoryLevelResponse struct {
	InventoryID  string `json:"inventoryId"`
	ProductID    string `json:"productId"`
	Quantity     int64  `json:"quantity"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	MinimumStock int64  `json:"minimumStock"`
}
