package dto

import (
	"time"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoodsReceiptItemRequest is one received line.
type GoodsReceiptItemRequest struct {
	ProductID     string          `json:"productId" binding:"required"`
	Quantity      int64           `json:"quantity" binding:"required,gt=0"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
}

// CreateGoodsReceiptRequest defines the data needed to record a goods receipt.
type CreateGoodsReceiptRequest struct {
	SupplierID  string                    `json:"supplierId" binding:"required"`
	DocNumber   string                    `json:"docNumber"`
	TotalAmount decimal.Decimal           `json:"totalAmount"`
	Items       []GoodsReceiptItemRequest `json:"items" binding:"required,min=1,dive"`
}

// GoodsReceiptItemResponse is a received line with its product expanded.
type GoodsReceiptItemResponse struct {
	ProductID     string           `json:"productId"`
	Product       *ProductResponse `json:"product,omitempty"`
	Quantity      int64            `json:"quantity"`
	PurchasePrice decimal.Decimal  `json:"purchasePrice"`
}

// GoodsReceiptResponse defines the data returned for a goods receipt.
type GoodsReceiptResponse struct {
	ID          string                     `json:"id"`
	Date        time.Time                  `json:"date"`
	SupplierID  string                     `json:"supplierId"`
	Supplier    *SupplierResponse          `json:"supplier,omitempty"`
	DocNumber   string                     `json:"docNumber"`
	Items       []GoodsReceiptItemResponse `json:"items"`
	TotalAmount decimal.Decimal            `json:"totalAmount"`
}

// ListGoodsReceiptsResponse wraps a page of receipts.
type ListGoodsReceiptsResponse struct {
	GoodsReceipts []GoodsReceiptResponse `json:"goodsReceipts"`
	NextToken     *string                `json:"nextToken,omitempty"`
}

// ToGoodsReceiptResponse converts a domain.GoodsReceipt to GoodsReceiptResponse DTO
func ToGoodsReceiptResponse(r *domain.GoodsReceipt) GoodsReceiptResponse {
	items := make([]GoodsReceiptItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = GoodsReceiptItemResponse{
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			PurchasePrice: item.PurchasePrice,
		}
		if item.Product != nil {
			p := ToProductResponse(item.Product)
			items[i].Product = &p
		}
	}
	res := GoodsReceiptResponse{
		ID:          r.ReceiptID,
		Date:        r.Date,
		SupplierID:  r.SupplierID,
		DocNumber:   r.DocNumber,
		Items:       items,
		TotalAmount: r.TotalAmount,
	}
	if r.Supplier != nil {
		s := ToSupplierResponse(r.Supplier)
		res.Supplier = &s
	}
	return res
}

// ToListGoodsReceiptsResponse converts a page of receipts.
func ToListGoodsReceiptsResponse(receipts []domain.GoodsReceipt, nextToken *string) ListGoodsReceiptsResponse {
	res := make([]GoodsReceiptResponse, len(receipts))
	for i := range receipts {
		res[i] = ToGoodsReceiptResponse(&receipts[i])
	}
	return ListGoodsReceiptsResponse{GoodsReceipts: res, NextToken: nextToken}
}
