package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-stock/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para los agregados del dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de dashboard.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// LowStock devuelve los productos cuya existencia está en o por debajo de su umbral mínimo.
// La comparación es inclusiva: quantity == minimum_stock también alerta.
func (r *DashboardRepo) LowStock(ctx context.Context) ([]*repository.LowStockRow, error) {
	const query = `
	SELECT p.id, p.name, p.sku, p.minimum_stock, i.quantity
	FROM products p
	JOIN inventory i ON i.product_id = p.id
	WHERE i.quantity <= p.minimum_stock
	ORDER BY i.quantity`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dashboard.LowStock: %w", err)
	}
	defer rows.Close()

	var results []*repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.ProductID, &row.Name, &row.SKU, &row.MinimumStock, &row.Quantity); err != nil {
			return nil, fmt.Errorf("dashboard.LowStock scan: %w", err)
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}

// TotalInventoryValue devuelve SUM(price * quantity) sobre productos con fila de inventario.
// COALESCE devuelve cero si no hay existencias.
func (r *DashboardRepo) TotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(p.price * i.quantity), 0)
	FROM products p
	JOIN inventory i ON i.product_id = p.id`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.TotalInventoryValue: %w", err)
	}
	return total, nil
}

// CountProducts devuelve el total de productos, tengan o no fila de inventario.
func (r *DashboardRepo) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountProducts: %w", err)
	}
	return n, nil
}

// CountCategories devuelve el total de categorías.
func (r *DashboardRepo) CountCategories(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountCategories: %w", err)
	}
	return n, nil
}
