package repositories

import (
	"context"

	"github.com/SscSPs/pos_backend/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee by ID.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployeeByPhone retrieves an employee by login phone.
	FindEmployeeByPhone(ctx context.Context, phone string) (*domain.Employee, error)

	// ListEmployees retrieves a page of employees ordered by name.
	ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error)

	// CountEmployees returns how many employees exist.
	CountEmployees(ctx context.Context) (int, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee. Returns apperrors.ErrDuplicate if the phone is taken.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee overwrites name, phone, role, PIN hash and the last-updated audit fields.
	// Returns apperrors.ErrNotFound if the employee does not exist and apperrors.ErrDuplicate
	// if the new phone is taken.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
