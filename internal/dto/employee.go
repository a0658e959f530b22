package dto

import "github.com/SscSPs/pos_backend/internal/core/domain"

// CreateEmployeeRequest defines the data needed to create a new employee.
type CreateEmployeeRequest struct {
	Name  string              `json:"name" binding:"required"`
	Phone string              `json:"phone" binding:"required"`
	Role  domain.EmployeeRole `json:"role" binding:"required,oneof=ADMIN CASHIER"`
	Pin   string              `json:"pin" binding:"required,len=4,numeric"`
}

// UpdateEmployeeRequest changes an employee. Omitted fields keep their value; a given PIN is re-hashed.
type UpdateEmployeeRequest struct {
	Name  *string              `json:"name" binding:"omitempty,min=1"`
	Phone *string              `json:"phone" binding:"omitempty,min=1"`
	Role  *domain.EmployeeRole `json:"role" binding:"omitempty,oneof=ADMIN CASHIER"`
	Pin   *string              `json:"pin" binding:"omitempty,len=4,numeric"`
}

// EmployeeResponse defines the data returned for an employee. The PIN hash never leaves the service.
type EmployeeResponse struct {
	ID    string              `json:"id"`
	Name  string              `json:"name"`
	Phone string              `json:"phone"`
	Role  domain.EmployeeRole `json:"role"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:    e.EmployeeID,
		Name:  e.Name,
		Phone: e.Phone,
		Role:  e.Role,
	}
}

// ToListEmployeeResponse converts a slice of domain.Employee to a slice of EmployeeResponse DTOs
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}
