package repository

import (
	"context"

	"github.com/tu-usuario/inventario-stock/internal/domain/entity"
)

// InventoryRepository define el puerto para la fila de existencias por producto.
// GetForUpdate/Init/ApplyDelta se usan dentro de una transacción para garantizar
// que la cantidad nunca quede negativa ante ajustes concurrentes.
type InventoryRepository interface {
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE). Devuelve nil si no existe.
	GetForUpdate(ctx context.Context, productID string) (*entity.InventoryRecord, error)
	// Init crea la fila con cantidad 0 (inicialización perezosa en el primer movimiento).
	Init(ctx context.Context, record *entity.InventoryRecord) error
	// ApplyDelta suma delta (positivo o negativo) a la cantidad.
	// Devuelve domain.ErrNotFound si no afecta filas (el producto desapareció entre pasos).
	ApplyDelta(ctx context.Context, productID string, delta int64) error
	// List devuelve las existencias actuales con datos del producto (JOIN products).
	List(ctx context.Context) ([]*entity.InventoryLevel, error)
}
