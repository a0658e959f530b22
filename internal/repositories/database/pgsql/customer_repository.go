package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/pos_backend/internal/models"
	"github.com/SscSPs/pos_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const customerColumns = `customer_id, name, phone, debt, created_at, created_by, last_updated_at, last_updated_by`

type PgxCustomerRepository struct {
	db querier
}

func newPgxCustomerRepository(db querier) *PgxCustomerRepository {
	return &PgxCustomerRepository{db: db}
}

var (
	_ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)
	_ portsrepo.CustomerLedgerStore      = (*PgxCustomerRepository)(nil)
)

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.Name,
		&m.Phone,
		&m.Debt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		m.CustomerID, m.Name, m.Phone, m.Debt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError("failed to save customer", err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`
	return r.findOne(ctx, query, customerID)
}

// FindCustomerByIDForUpdate must be called within a transaction.
func (r *PgxCustomerRepository) FindCustomerByIDForUpdate(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1 FOR UPDATE;`
	return r.findOne(ctx, query, customerID)
}

func (r *PgxCustomerRepository) findOne(ctx context.Context, query, customerID string) (*domain.Customer, error) {
	m, err := scanCustomer(r.db.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("customer %s: %w", customerID, apperrors.ErrNotFound)
		}
		return nil, mapPgError("failed to find customer by ID "+customerID, err)
	}
	d := mapping.ToDomainCustomer(m)
	return &d, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		ORDER BY name, customer_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	ms := []models.Customer{}
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return mapping.ToDomainCustomerSlice(ms), nil
}

func (r *PgxCustomerRepository) UpdateCustomerDebt(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers
		SET debt = $1, last_updated_at = $2, last_updated_by = $3
		WHERE customer_id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, customer.Debt, customer.LastUpdatedAt, customer.LastUpdatedBy, customer.CustomerID)
	if err != nil {
		return mapPgError("failed to update customer debt", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", customer.CustomerID, apperrors.ErrNotFound)
	}
	return nil
}

// InsertDebtPayment must be called within a transaction.
func (r *PgxCustomerRepository) InsertDebtPayment(ctx context.Context, payment domain.DebtPayment) error {
	m := mapping.ToModelDebtPayment(payment)
	query := `
		INSERT INTO debt_payments (debt_payment_id, customer_id, amount, payment_type, payment_date, received_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query, m.DebtPaymentID, m.CustomerID, m.Amount, m.PaymentType, m.PaymentDate, m.ReceivedBy)
	if err != nil {
		return mapPgError("failed to insert debt payment", err)
	}
	return nil
}
