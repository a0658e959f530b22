package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
)

// referenceCache expands seller, customer and supplier references on read paths,
// looking each id up at most once per call.
type referenceCache struct {
	employeeRepo portsrepo.EmployeeReader
	customerRepo portsrepo.CustomerReader
	supplierRepo portsrepo.SupplierReader

	employees map[string]*domain.Employee
	customers map[string]*domain.Customer
	suppliers map[string]*domain.Supplier
}

func newReferenceCache(employeeRepo portsrepo.EmployeeReader, customerRepo portsrepo.CustomerReader) *referenceCache {
	return &referenceCache{
		employeeRepo: employeeRepo,
		customerRepo: customerRepo,
		employees:    make(map[string]*domain.Employee),
		customers:    make(map[string]*domain.Customer),
		suppliers:    make(map[string]*domain.Supplier),
	}
}

func (r *referenceCache) withSuppliers(supplierRepo portsrepo.SupplierReader) *referenceCache {
	r.supplierRepo = supplierRepo
	return r
}

// A reference that no longer resolves is left unexpanded rather than failing the read.
func ignoreNotFound(err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	return err
}

func (r *referenceCache) employee(ctx context.Context, id string) (*domain.Employee, error) {
	if e, ok := r.employees[id]; ok {
		return e, nil
	}
	e, err := r.employeeRepo.FindEmployeeByID(ctx, id)
	if err = ignoreNotFound(err); err != nil {
		return nil, fmt.Errorf("failed to expand employee %s: %w", id, err)
	}
	r.employees[id] = e
	return e, nil
}

func (r *referenceCache) customer(ctx context.Context, id string) (*domain.Customer, error) {
	if c, ok := r.customers[id]; ok {
		return c, nil
	}
	c, err := r.customerRepo.FindCustomerByID(ctx, id)
	if err = ignoreNotFound(err); err != nil {
		return nil, fmt.Errorf("failed to expand customer %s: %w", id, err)
	}
	r.customers[id] = c
	return c, nil
}

func (r *referenceCache) supplier(ctx context.Context, id string) (*domain.Supplier, error) {
	if s, ok := r.suppliers[id]; ok {
		return s, nil
	}
	s, err := r.supplierRepo.FindSupplierByID(ctx, id)
	if err = ignoreNotFound(err); err != nil {
		return nil, fmt.Errorf("failed to expand supplier %s: %w", id, err)
	}
	r.suppliers[id] = s
	return s, nil
}

func (r *referenceCache) expandSale(ctx context.Context, sale *domain.Sale) error {
	seller, err := r.employee(ctx, sale.SellerID)
	if err != nil {
		return err
	}
	sale.Seller = seller
	if sale.CustomerID != nil {
		customer, err := r.customer(ctx, *sale.CustomerID)
		if err != nil {
			return err
		}
		sale.Customer = customer
	}
	return nil
}

func (r *referenceCache) expandGoodsReceipt(ctx context.Context, receipt *domain.GoodsReceipt) error {
	supplier, err := r.supplier(ctx, receipt.SupplierID)
	if err != nil {
		return err
	}
	receipt.Supplier = supplier
	return nil
}

// resolveActor loads the employee behind an authenticated request. A token whose subject no
// longer resolves is an authentication failure, not bad input.
func resolveActor(ctx context.Context, employeeRepo portsrepo.EmployeeReader, actorID string) (*domain.Employee, error) {
	actor, err := employeeRepo.FindEmployeeByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown employee %s", apperrors.ErrUnauthorized, actorID)
		}
		return nil, fmt.Errorf("failed to resolve employee %s: %w", actorID, err)
	}
	return actor, nil
}
