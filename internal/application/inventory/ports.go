package inventory

import (
	"context"

	"github.com/tu-usuario/inventario-stock/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el ajuste de stock: o se aplican el
// delta y el movimiento juntos, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
