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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, sku, description, category_id, price, minimum_stock, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SKU, product.Description, product.CategoryID,
		product.Price, product.MinimumStock, product.ImageURL, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, sku, description, category_id, price, minimum_stock, image_url, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Description, &p.CategoryID, &p.Price,
		&p.MinimumStock, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update reemplaza los campos editables del producto. ErrNotFound si no afecta filas.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, sku = $3, description = $4, category_id = $5,
			price = $6, minimum_stock = $7, image_url = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SKU, product.Description, product.CategoryID,
		product.Price, product.MinimumStock, product.ImageURL, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los productos con el nombre de su categoría (LEFT JOIN: el vínculo es nullable).
func (r *ProductRepo) List() ([]*entity.ProductWithCategory, error) {
	query := `
		SELECT p.id, p.name, p.sku, p.description, p.category_id, p.price,
		       p.minimum_stock, p.image_url, p.created_at, p.updated_at, c.name
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductWithCategory
	for rows.Next() {
		var p entity.ProductWithCategory
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Description, &p.CategoryID, &p.Price,
			&p.MinimumStock, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt, &p.CategoryName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListRefs devuelve referencias ligeras (id, nombre, sku) para el selector del formulario de stock.
func (r *ProductRepo) ListRefs() ([]*entity.ProductRef, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name, sku FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list product refs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductRef
	for rows.Next() {
		var ref entity.ProductRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.SKU); err != nil {
			return nil, fmt.Errorf("scan product ref: %w", err)
		}
		list = append(list, &ref)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. ErrNotFound si no afecta filas.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count devuelve el total de productos.
func (r *ProductRepo) Count() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
