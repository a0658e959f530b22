package repositories

import (
	"context"

	"github.com/SscSPs/pos_backend/internal/core/domain"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a product by its ID.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductsByIDs retrieves several products at once. Missing ids are absent from the map.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// ListProducts retrieves a page of products ordered by name.
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error
}

// ProductLedgerStore is the storage side of the product ledger. Only usable inside a unit of work.
type ProductLedgerStore interface {
	// FindProductsByIDsForUpdate locks the given products until the unit of work ends.
	// Returns apperrors.ErrNotFound if any id does not exist.
	FindProductsByIDsForUpdate(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// UpdateProductLedger writes stock and purchase price of a locked product.
	UpdateProductLedger(ctx context.Context, product domain.Product) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
