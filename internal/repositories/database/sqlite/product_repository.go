package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/pos_backend/internal/models"
	"github.com/SscSPs/pos_backend/internal/utils/mapping"
	"github.com/jmoiron/sqlx"
)

const productColumns = `product_id, name, barcode, unit, sale_price, purchase_price, stock,
	created_at, created_by, last_updated_at, last_updated_by`

type SQLiteProductRepository struct {
	db sqlx.ExtContext
}

func newSQLiteProductRepository(db sqlx.ExtContext) *SQLiteProductRepository {
	return &SQLiteProductRepository{db: db}
}

var (
	_ portsrepo.ProductRepositoryFacade = (*SQLiteProductRepository)(nil)
	_ portsrepo.ProductLedgerStore      = (*SQLiteProductRepository)(nil)
)

func (r *SQLiteProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES (:product_id, :name, :barcode, :unit, :sale_price, :purchase_price, :stock,
			:created_at, :created_by, :last_updated_at, :last_updated_by)`
	if _, err := sqlx.NamedExecContext(ctx, r.db, query, m); err != nil {
		return mapSQLiteError("failed to save product", err)
	}
	return nil
}

func (r *SQLiteProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	var m models.Product
	err := sqlx.GetContext(ctx, r.db, &m, `SELECT `+productColumns+` FROM products WHERE product_id = ?`, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapSQLiteError("failed to find product by ID "+productID, err)
	}
	d := mapping.ToDomainProduct(m)
	return &d, nil
}

func (r *SQLiteProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	return r.findProductMap(ctx, productIDs)
}

func (r *SQLiteProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	ms := []models.Product{}
	err := sqlx.SelectContext(ctx, r.db, &ms, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY name, product_id
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, mapSQLiteError("failed to query products", err)
	}
	return mapping.ToDomainProductSlice(ms), nil
}

// FindProductsByIDsForUpdate must be called within a transaction. The store runs on a
// single connection, so the open transaction already excludes other writers.
func (r *SQLiteProductRepository) FindProductsByIDsForUpdate(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	products, err := r.findProductMap(ctx, productIDs)
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

func (r *SQLiteProductRepository) UpdateProductLedger(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET stock = ?, purchase_price = ?, last_updated_at = ?, last_updated_by = ?
		WHERE product_id = ?`,
		m.Stock, m.PurchasePrice, m.LastUpdatedAt, m.LastUpdatedBy, m.ProductID)
	if err != nil {
		return mapSQLiteError("failed to update product ledger", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("product %s: %w", product.ProductID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *SQLiteProductRepository) findProductMap(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	products := make(map[string]domain.Product, len(productIDs))
	if len(productIDs) == 0 {
		return products, nil
	}
	query, args, err := sqlx.In(`SELECT `+productColumns+` FROM products WHERE product_id IN (?) ORDER BY product_id`, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build product lookup: %w", err)
	}
	ms := []models.Product{}
	if err := sqlx.SelectContext(ctx, r.db, &ms, r.db.Rebind(query), args...); err != nil {
		return nil, mapSQLiteError("failed to query products by IDs", err)
	}
	for _, m := range ms {
		products[m.ProductID] = mapping.ToDomainProduct(m)
	}
	return products, nil
}
