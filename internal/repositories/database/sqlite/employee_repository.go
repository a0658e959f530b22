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

const employeeColumns = `employee_id, name, phone, role, pin_hash, created_at, created_by, last_updated_at, last_updated_by`

type SQLiteEmployeeRepository struct {
	db sqlx.ExtContext
}

func newSQLiteEmployeeRepository(db sqlx.ExtContext) *SQLiteEmployeeRepository {
	return &SQLiteEmployeeRepository{db: db}
}

var _ portsrepo.EmployeeRepositoryFacade = (*SQLiteEmployeeRepository)(nil)

func (r *SQLiteEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES (:employee_id, :name, :phone, :role, :pin_hash, :created_at, :created_by, :last_updated_at, :last_updated_by)`
	if _, err := sqlx.NamedExecContext(ctx, r.db, query, m); err != nil {
		return mapSQLiteError("failed to save employee", err)
	}
	return nil
}

func (r *SQLiteEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	res, err := sqlx.NamedExecContext(ctx, r.db, `
		UPDATE employees
		SET name = :name, phone = :phone, role = :role, pin_hash = :pin_hash,
			last_updated_at = :last_updated_at, last_updated_by = :last_updated_by
		WHERE employee_id = :employee_id`, m)
	if err != nil {
		return mapSQLiteError("failed to update employee", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *SQLiteEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return r.findOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE employee_id = ?`, employeeID)
}

func (r *SQLiteEmployeeRepository) FindEmployeeByPhone(ctx context.Context, phone string) (*domain.Employee, error) {
	return r.findOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE phone = ?`, phone)
}

func (r *SQLiteEmployeeRepository) findOne(ctx context.Context, query, arg string) (*domain.Employee, error) {
	var m models.Employee
	if err := sqlx.GetContext(ctx, r.db, &m, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapSQLiteError("failed to find employee", err)
	}
	d := mapping.ToDomainEmployee(m)
	return &d, nil
}

func (r *SQLiteEmployeeRepository) ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	ms := []models.Employee{}
	err := sqlx.SelectContext(ctx, r.db, &ms, `
		SELECT `+employeeColumns+`
		FROM employees
		ORDER BY name, employee_id
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, mapSQLiteError("failed to query employees", err)
	}
	return mapping.ToDomainEmployeeSlice(ms), nil
}

func (r *SQLiteEmployeeRepository) CountEmployees(ctx context.Context) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, r.db, &count, `SELECT COUNT(*) FROM employees`); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}
