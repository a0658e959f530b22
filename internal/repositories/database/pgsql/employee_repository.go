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

const employeeColumns = `employee_id, name, phone, role, pin_hash, created_at, created_by, last_updated_at, last_updated_by`

type PgxEmployeeRepository struct {
	db querier
}

func newPgxEmployeeRepository(db querier) *PgxEmployeeRepository {
	return &PgxEmployeeRepository{db: db}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.Name,
		&m.Phone,
		&m.Role,
		&m.PinHash,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.EmployeeID, m.Name, m.Phone, m.Role, m.PinHash,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError("failed to save employee", err)
	}
	return nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		UPDATE employees
		SET name = $2, phone = $3, role = $4, pin_hash = $5, last_updated_at = $6, last_updated_by = $7
		WHERE employee_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.EmployeeID, m.Name, m.Phone, m.Role, m.PinHash, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError("failed to update employee", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	return r.findOne(ctx, query, employeeID)
}

func (r *PgxEmployeeRepository) FindEmployeeByPhone(ctx context.Context, phone string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE phone = $1;`
	return r.findOne(ctx, query, phone)
}

func (r *PgxEmployeeRepository) findOne(ctx context.Context, query, arg string) (*domain.Employee, error) {
	m, err := scanEmployee(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	d := mapping.ToDomainEmployee(m)
	return &d, nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY name, employee_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	ms := []models.Employee{}
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}
	return mapping.ToDomainEmployeeSlice(ms), nil
}

func (r *PgxEmployeeRepository) CountEmployees(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}
