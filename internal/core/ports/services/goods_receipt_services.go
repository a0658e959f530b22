package services

import (
	"context"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/SscSPs/pos_backend/internal/dto"
)

// GoodsReceiptReaderSvc defines read operations for goods receipts
type GoodsReceiptReaderSvc interface {
	GetGoodsReceiptByID(ctx context.Context, receiptID string) (*domain.GoodsReceipt, error)
	ListGoodsReceipts(ctx context.Context, params dto.ListTokenParams) ([]domain.GoodsReceipt, *string, error)
}

// GoodsReceiptWriterSvc defines write operations for goods receipts
type GoodsReceiptWriterSvc interface {
	// CreateGoodsReceipt records received goods, raising stock and overwriting purchase prices atomically.
	CreateGoodsReceipt(ctx context.Context, actorID string, req dto.CreateGoodsReceiptRequest) (*domain.GoodsReceipt, error)
}

// GoodsReceiptSvcFacade combines all goods receipt service interfaces
type GoodsReceiptSvcFacade interface {
	GoodsReceiptReaderSvc
	GoodsReceiptWriterSvc
}
