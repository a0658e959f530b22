package repositories

import (
	"context"

	"github.com/SscSPs/pos_backend/internal/core/domain"
)

// GoodsReceiptReader defines read operations for goods receipt data
type GoodsReceiptReader interface {
	// FindGoodsReceiptByID retrieves a receipt with its items (references not expanded).
	FindGoodsReceiptByID(ctx context.Context, receiptID string) (*domain.GoodsReceipt, error)

	// ListGoodsReceipts retrieves receipts newest first using token-based pagination.
	ListGoodsReceipts(ctx context.Context, limit int, nextToken *string) ([]domain.GoodsReceipt, *string, error)
}

// GoodsReceiptWriter defines write operations for goods receipt data. Only usable inside a unit of work.
type GoodsReceiptWriter interface {
	InsertGoodsReceipt(ctx context.Context, receipt domain.GoodsReceipt) error
	InsertGoodsReceiptItem(ctx context.Context, item domain.GoodsReceiptItem) error
}
