package dto

import (
	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the data needed to create a new customer.
type CreateCustomerRequest struct {
	Name  string          `json:"name" binding:"required"`
	Phone string          `json:"phone"`
	Debt  decimal.Decimal `json:"debt"` // Opening balance, defaults to zero
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Phone string          `json:"phone"`
	Debt  decimal.Decimal `json:"debt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:    c.CustomerID,
		Name:  c.Name,
		Phone: c.Phone,
		Debt:  c.Debt,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to a slice of CustomerResponse DTOs
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}
