package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/inventario-stock/internal/domain"
	"github.com/tu-usuario/inventario-stock/internal/domain/entity"
	"github.com/tu-usuario/inventario-stock/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
// Las operaciones de escritura se invocan siempre dentro de la transacción del TxRunner.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GetForUpdate obtiene la fila de existencias del producto y la bloquea (SELECT FOR UPDATE).
// Devuelve nil si no existe; el caller la inicializa con Init.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, productID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT id, product_id, quantity, created_at, updated_at
		FROM inventory WHERE product_id = $1
		FOR UPDATE`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(ctx, query, productID).Scan(
		&rec.ID, &rec.ProductID, &rec.Quantity, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &rec, nil
}

// Init crea la fila de existencias con cantidad 0 (inicialización perezosa).
// ON CONFLICT DO NOTHING: si otro ajuste concurrente la creó primero, el caller
// debe releer con GetForUpdate.
func (r *InventoryRepo) Init(ctx context.Context, record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (product_id) DO NOTHING`
	_, err := r.q.Exec(ctx, query,
		record.ID, record.ProductID, record.Quantity, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("init inventory: %w", err)
	}
	return nil
}

// ApplyDelta suma delta a la cantidad del producto. ErrNotFound si no afecta filas
// (la fila desapareció entre pasos de la secuencia).
func (r *InventoryRepo) ApplyDelta(ctx context.Context, productID string, delta int64) error {
	query := `
		UPDATE inventory SET quantity = quantity + $2, updated_at = now()
		WHERE product_id = $1`
	cmd, err := r.q.Exec(ctx, query, productID, delta)
	if err != nil {
		return fmt.Errorf("apply stock delta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve las existencias actuales con datos del producto (JOIN products).
func (r *InventoryRepo) List(ctx context.Context) ([]*entity.InventoryLevel, error) {
	query := `
		SELECT i.id, i.product_id, i.quantity, p.name, p.sku, p.minimum_stock
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		ORDER BY p.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLevel
	for rows.Next() {
		var l entity.InventoryLevel
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Quantity, &l.ProductName, &l.SKU, &l.MinimumStock); err != nil {
			return nil, fmt.Errorf("scan inventory level: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
