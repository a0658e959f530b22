package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/pos_backend/internal/models"
	"github.com/SscSPs/pos_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const productColumns = `product_id, name, barcode, unit, sale_price, purchase_price, stock,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxProductRepository struct {
	db querier
}

func newPgxProductRepository(db querier) *PgxProductRepository {
	return &PgxProductRepository{db: db}
}

var (
	_ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)
	_ portsrepo.ProductLedgerStore      = (*PgxProductRepository)(nil)
)

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.Name,
		&m.Barcode,
		&m.Unit,
		&m.SalePrice,
		&m.PurchasePrice,
		&m.Stock,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db.Exec(ctx, query,
		m.ProductID,
		m.Name,
		m.Barcode,
		m.Unit,
		m.SalePrice,
		m.PurchasePrice,
		m.Stock,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError("failed to save product", err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`
	m, err := scanProduct(r.db.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	d := mapping.ToDomainProduct(m)
	return &d, nil
}

func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ANY($1);`
	return r.queryProductMap(ctx, query, productIDs)
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY name, product_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	ms := []models.Product{}
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return mapping.ToDomainProductSlice(ms), nil
}

// FindProductsByIDsForUpdate locks the rows in product_id order. Must be called within a transaction.
func (r *PgxProductRepository) FindProductsByIDsForUpdate(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = ANY($1)
		ORDER BY product_id
		FOR UPDATE;
	`
	products, err := r.queryProductMap(ctx, query, productIDs)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, id := range productIDs {
		if _, ok := products[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("products %s: %w", strings.Join(missing, ", "), apperrors.ErrNotFound)
	}
	return products, nil
}

func (r *PgxProductRepository) UpdateProductLedger(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products
		SET stock = $1, purchase_price = $2, last_updated_at = $3, last_updated_by = $4
		WHERE product_id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		product.Stock,
		product.PurchasePrice,
		product.LastUpdatedAt,
		product.LastUpdatedBy,
		product.ProductID,
	)
	if err != nil {
		return mapPgError("failed to update product ledger", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", product.ProductID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProductRepository) queryProductMap(ctx context.Context, query string, productIDs []string) (map[string]domain.Product, error) {
	rows, err := r.db.Query(ctx, query, productIDs)
	if err != nil {
		return nil, mapPgError("failed to query products by IDs", err)
	}
	defer rows.Close()

	products := make(map[string]domain.Product, len(productIDs))
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, mapPgError("failed to scan product row", err)
		}
		products[m.ProductID] = mapping.ToDomainProduct(m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError("error iterating product rows", err)
	}
	return products, nil
}
