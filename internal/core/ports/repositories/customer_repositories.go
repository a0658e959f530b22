package repositories

import (
	"context"

	"github.com/SscSPs/pos_backend/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by its ID.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a page of customers ordered by name.
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerLedgerStore is the storage side of the customer ledger. Only usable inside a unit of work.
type CustomerLedgerStore interface {
	// FindCustomerByIDForUpdate locks a customer row until the unit of work ends.
	FindCustomerByIDForUpdate(ctx context.Context, customerID string) (*domain.Customer, error)

	// UpdateCustomerDebt writes the debt of a locked customer.
	UpdateCustomerDebt(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
