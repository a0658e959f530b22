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

const customerColumns = `customer_id, name, phone, debt, created_at, created_by, last_updated_at, last_updated_by`

type SQLiteCustomerRepository struct {
	db sqlx.ExtContext
}

func newSQLiteCustomerRepository(db sqlx.ExtContext) *SQLiteCustomerRepository {
	return &SQLiteCustomerRepository{db: db}
}

var (
	_ portsrepo.CustomerRepositoryFacade = (*SQLiteCustomerRepository)(nil)
	_ portsrepo.CustomerLedgerStore      = (*SQLiteCustomerRepository)(nil)
	_ portsrepo.DebtPaymentWriter        = (*SQLiteCustomerRepository)(nil)
)

func (r *SQLiteCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES (:customer_id, :name, :phone, :debt, :created_at, :created_by, :last_updated_at, :last_updated_by)`
	if _, err := sqlx.NamedExecContext(ctx, r.db, query, m); err != nil {
		return mapSQLiteError("failed to save customer", err)
	}
	return nil
}

func (r *SQLiteCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	var m models.Customer
	err := sqlx.GetContext(ctx, r.db, &m, `SELECT `+customerColumns+` FROM customers WHERE customer_id = ?`, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("customer %s: %w", customerID, apperrors.ErrNotFound)
		}
		return nil, mapSQLiteError("failed to find customer by ID "+customerID, err)
	}
	d := mapping.ToDomainCustomer(m)
	return &d, nil
}

// FindCustomerByIDForUpdate must be called within a transaction.
func (r *SQLiteCustomerRepository) FindCustomerByIDForUpdate(ctx context.Context, customerID string) (*domain.Customer, error) {
	return r.FindCustomerByID(ctx, customerID)
}

func (r *SQLiteCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	ms := []models.Customer{}
	err := sqlx.SelectContext(ctx, r.db, &ms, `
		SELECT `+customerColumns+`
		FROM customers
		ORDER BY name, customer_id
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, mapSQLiteError("failed to query customers", err)
	}
	return mapping.ToDomainCustomerSlice(ms), nil
}

func (r *SQLiteCustomerRepository) UpdateCustomerDebt(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	res, err := r.db.ExecContext(ctx, `
		UPDATE customers
		SET debt = ?, last_updated_at = ?, last_updated_by = ?
		WHERE customer_id = ?`,
		m.Debt, m.LastUpdatedAt, m.LastUpdatedBy, m.CustomerID)
	if err != nil {
		return mapSQLiteError("failed to update customer debt", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("customer %s: %w", customer.CustomerID, apperrors.ErrNotFound)
	}
	return nil
}

// InsertDebtPayment must be called within a transaction.
func (r *SQLiteCustomerRepository) InsertDebtPayment(ctx context.Context, payment domain.DebtPayment) error {
	m := mapping.ToModelDebtPayment(payment)
	query := `
		INSERT INTO debt_payments (debt_payment_id, customer_id, amount, payment_type, payment_date, received_by)
		VALUES (:debt_payment_id, :customer_id, :amount, :payment_type, :payment_date, :received_by)`
	if _, err := sqlx.NamedExecContext(ctx, r.db, query, m); err != nil {
		return mapSQLiteError("failed to insert debt payment", err)
	}
	return nil
}
