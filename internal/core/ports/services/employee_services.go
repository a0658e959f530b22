package services

import (
	"context"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/SscSPs/pos_backend/internal/dto"
)

// EmployeeReaderSvc defines read operations for employees
type EmployeeReaderSvc interface {
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, params dto.ListParams) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employees
type EmployeeWriterSvc interface {
	CreateEmployee(ctx context.Context, actorID string, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// UpdateEmployee changes name, phone, role or PIN of an employee. Admin only.
	UpdateEmployee(ctx context.Context, actorID string, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// EnsureBootstrapAdmin creates an admin employee when none exists yet. Returns nil, nil if
	// employees already exist.
	EnsureBootstrapAdmin(ctx context.Context, name, phone, pin string) (*domain.Employee, error)
}

// EmployeeAuthSvc defines employee authentication
type EmployeeAuthSvc interface {
	// AuthenticateEmployee checks a phone + PIN pair. Returns apperrors.ErrUnauthorized on mismatch.
	AuthenticateEmployee(ctx context.Context, phone, pin string) (*domain.Employee, error)
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
	EmployeeAuthSvc
}
