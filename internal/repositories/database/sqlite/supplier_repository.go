package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/pos_backend/internal/models"
	"github.com/SscSPs/pos_backend/internal/utils/mapping"
	"github.com/jmoiron/sqlx"
)

const supplierColumns = `supplier_id, name, phone, address, created_at, created_by, last_updated_at, last_updated_by`

type SQLiteSupplierRepository struct {
	db sqlx.ExtContext
}

func newSQLiteSupplierRepository(db sqlx.ExtContext) *SQLiteSupplierRepository {
	return &SQLiteSupplierRepository{db: db}
}

var _ portsrepo.SupplierRepositoryFacade = (*SQLiteSupplierRepository)(nil)

func (r *SQLiteSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES (:supplier_id, :name, :phone, :address, :created_at, :created_by, :last_updated_at, :last_updated_by)`
	if _, err := sqlx.NamedExecContext(ctx, r.db, query, m); err != nil {
		return mapSQLiteError("failed to save supplier", err)
	}
	return nil
}

func (r *SQLiteSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	var m models.Supplier
	err := sqlx.GetContext(ctx, r.db, &m, `SELECT `+supplierColumns+` FROM suppliers WHERE supplier_id = ?`, supplierID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("supplier %s: %w", supplierID, apperrors.ErrNotFound)
		}
		return nil, mapSQLiteError("failed to find supplier by ID "+supplierID, err)
	}
	d := mapping.ToDomainSupplier(m)
	return &d, nil
}

func (r *SQLiteSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	ms := []models.Supplier{}
	err := sqlx.SelectContext(ctx, r.db, &ms, `
		SELECT `+supplierColumns+`
		FROM suppliers
		ORDER BY name, supplier_id
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, mapSQLiteError("failed to query suppliers", err)
	}
	return mapping.ToDomainSupplierSlice(ms), nil
}
