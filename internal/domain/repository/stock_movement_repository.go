package repository

import (
	"context"

	"github.com/tu-usuario/inventario-stock/internal/domain/entity"
)

// StockMovementRepository define el puerto para el log append-only de movimientos.
// No hay Update ni Delete: los movimientos son inmutables.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
}
