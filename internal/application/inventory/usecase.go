package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-stock/internal/application/dto"
	"github.com/tu-usuario/inventario-stock/internal/domain"
	"github.com/tu-usuario/inventario-stock/internal/domain/entity"
	"github.com/tu-usuario/inventario-stock/internal/domain/repository"
)

// AdjustStockUseCase aplica ajustes de stock (ADD/REMOVE) de forma transaccional,
// con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback. Es el único camino
// de escritura sobre inventory y stock_movements.
type AdjustStockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	invRepo     repository.InventoryRepository
}

// NewAdjustStockUseCase construye el caso de uso. invRepo (atado al pool) solo se
// usa para lecturas; las escrituras pasan por los repos de la transacción.
func NewAdjustStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, productRepo: productRepo, invRepo: invRepo}
}

// AdjustStockInput entrada para un ajuste de stock. UserID viene del token (actor del movimiento).
type AdjustStockInput struct {
	ProductID string
	Quantity  int64
	Type      string // ADD | REMOVE
	Notes     string
	UserID    string
}

// AdjustStock ejecuta la secuencia completa dentro de una transacción:
//  1. inicialización perezosa de la fila de inventario (cantidad 0) si no existe;
//  2. para REMOVE, verifica existencia suficiente sobre la fila bloqueada;
//  3. aplica el delta (ErrNotFound si el producto desapareció entre pasos);
//  4. agrega el movimiento inmutable con el actor.
//
// El FOR UPDATE serializa los ajustes por producto: la cantidad nunca queda
// negativa ni se pierden actualizaciones ante REMOVEs concurrentes.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, input AdjustStockInput) error {
	if input.ProductID == "" || input.UserID == "" {
		return domain.ErrInvalidInput
	}
	if !entity.ValidMovementType(input.Type) {
		return domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	now := time.Now()

	return uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.StockMovementRepository,
	) error {
		record, err := invRepo.GetForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if record == nil {
			init := &entity.InventoryRecord{
				ID:        uuid.New().String(),
				ProductID: input.ProductID,
				Quantity:  0,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := invRepo.Init(ctx, init); err != nil {
				return err
			}
			// Relee con bloqueo: el INSERT pudo perder contra otro ajuste concurrente
			// (ON CONFLICT DO NOTHING) y la fila existente aún no está bloqueada.
			record, err = invRepo.GetForUpdate(ctx, input.ProductID)
			if err != nil {
				return err
			}
			if record == nil {
				return domain.ErrNotFound
			}
		}

		delta := input.Quantity
		if input.Type == entity.MovementTypeREMOVE {
			if record.Quantity < input.Quantity {
				return domain.ErrInsufficientStock
			}
			delta = -input.Quantity
		}

		if err := invRepo.ApplyDelta(ctx, input.ProductID, delta); err != nil {
			return err
		}

		movement := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			Type:      input.Type,
			Notes:     input.Notes,
			UserID:    input.UserID,
			CreatedAt: now,
		}
		return movRepo.Create(ctx, movement)
	})
}

// AdjustStockFromRequest adapta el request HTTP al caso de uso.
func (uc *AdjustStockUseCase) AdjustStockFromRequest(ctx context.Context, userID string, in dto.AdjustStockRequest) error {
	return uc.AdjustStock(ctx, AdjustStockInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Type:      in.Type,
		Notes:     in.Notes,
		UserID:    userID,
	})
}

// ListLevels devuelve las existencias actuales con datos del producto (GET /inventory).
func (uc *AdjustStockUseCase) ListLevels(ctx context.Context) ([]dto.InventoryLevelResponse, error) {
	levels, err := uc.invRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryLevelResponse, 0, len(levels))
	for _, l := range levels {
		out = append(out, dto.InventoryLevelResponse{
			InventoryID:  l.ID,
			ProductID:    l.ProductID,
			Quantity:     l.Quantity,
			Name:         l.ProductName,
			SKU:          l.SKU,
			MinimumStock: l.MinimumStock,
		})
	}
	return out, nil
}
