package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/SscSPs/pos_backend/internal/utils"
)

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade, options ...ServiceOption) portssvc.EmployeeSvcFacade {
	return &employeeService{
		BaseService:  newBaseService(options...),
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// CreateEmployee adds an employee. Only admins may do this.
func (s *employeeService) CreateEmployee(ctx context.Context, actorID string, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	actor, err := resolveActor(ctx, s.employeeRepo, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin {
		s.LogDebug(ctx, "Non-admin tried to create employee", slog.String("actor_id", actorID))
		return nil, fmt.Errorf("%w: only admins can create employees", apperrors.ErrForbidden)
	}

	return s.create(ctx, actorID, req)
}

func (s *employeeService) create(ctx context.Context, actorID string, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	pinHash, err := utils.HashPin(req.Pin)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash PIN")
		return nil, fmt.Errorf("failed to hash PIN: %w", err)
	}

	employee := domain.Employee{
		EmployeeID: s.IDs.NewID(domain.EmployeeIDPrefix),
		Name:       req.Name,
		Phone:      req.Phone,
		Role:       req.Role,
		PinHash:    pinHash,
	}
	if actorID == "" {
		actorID = employee.EmployeeID
	}
	employee.AuditFields = auditFields(actorID, s.now())

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save employee", slog.String("phone", req.Phone))
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.LogInfo(ctx, "Employee created",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("role", string(employee.Role)))
	return &employee, nil
}

// UpdateEmployee applies the given fields. Only admins may do this.
func (s *employeeService) UpdateEmployee(ctx context.Context, actorID string, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	actor, err := resolveActor(ctx, s.employeeRepo, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin {
		s.LogDebug(ctx, "Non-admin tried to update employee", slog.String("actor_id", actorID), slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("%w: only admins can update employees", apperrors.ErrForbidden)
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load employee for update", slog.String("employee_id", employeeID))
		}
		return nil, fmt.Errorf("employee %s: %w", employeeID, err)
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}
	if req.Pin != nil {
		pinHash, err := utils.HashPin(*req.Pin)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash PIN")
			return nil, fmt.Errorf("failed to hash PIN: %w", err)
		}
		employee.PinHash = pinHash
	}
	employee.LastUpdatedAt = s.now()
	employee.LastUpdatedBy = actorID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	s.LogInfo(ctx, "Employee updated",
		slog.String("employee_id", employeeID),
		slog.Bool("pin_changed", req.Pin != nil))
	return employee, nil
}

// EnsureBootstrapAdmin creates the first admin so a fresh install can be signed into.
func (s *employeeService) EnsureBootstrapAdmin(ctx context.Context, name, phone, pin string) (*domain.Employee, error) {
	count, err := s.employeeRepo.CountEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		return nil, nil
	}

	req := dto.CreateEmployeeRequest{Name: name, Phone: phone, Role: domain.RoleAdmin, Pin: pin}
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid bootstrap admin: %w", err)
	}
	return s.create(ctx, "", req)
}

// AuthenticateEmployee checks a phone + PIN pair.
func (s *employeeService) AuthenticateEmployee(ctx context.Context, phone, pin string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid phone or PIN", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up employee by phone")
		return nil, fmt.Errorf("failed to authenticate employee: %w", err)
	}
	if !utils.CheckPinHash(pin, employee.PinHash) {
		return nil, fmt.Errorf("%w: invalid phone or PIN", apperrors.ErrUnauthorized)
	}
	return employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get employee", slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, params dto.ListParams) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}
