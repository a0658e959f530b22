package services

import (
	"context"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/SscSPs/pos_backend/internal/dto"
)

// SupplierSvcFacade defines supplier operations
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, actorID string, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, params dto.ListParams) ([]domain.Supplier, error)
}
