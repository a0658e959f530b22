package repositories

import (
	"context"

	"github.com/SscSPs/pos_backend/internal/core/domain"
)

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSaleByID retrieves a sale with its cart items and payments (references not expanded).
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves sales newest first using token-based pagination.
	// It returns the sales (without items/payments), a token for the next page, and an error.
	ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error)
}

// SaleWriter defines write operations for sale data. Only usable inside a unit of work.
type SaleWriter interface {
	InsertSale(ctx context.Context, sale domain.Sale) error
	InsertCartItem(ctx context.Context, item domain.CartItem) error
	InsertSalePayment(ctx context.Context, payment domain.SalePayment) error
}
