package services

import (
	"context"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/SscSPs/pos_backend/internal/dto"
)

// CustomerReaderSvc defines read operations for customers
type CustomerReaderSvc interface {
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, params dto.ListParams) ([]domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customers
type CustomerWriterSvc interface {
	CreateCustomer(ctx context.Context, actorID string, req dto.CreateCustomerRequest) (*domain.Customer, error)

	// RecordDebtPayment reduces a customer's debt and records the payment in one unit of work.
	RecordDebtPayment(ctx context.Context, actorID string, customerID string, req dto.CreateDebtPaymentRequest) (*domain.DebtPayment, *domain.Customer, error)
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
