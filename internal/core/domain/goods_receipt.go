package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoodsReceipt is an immutable record of goods received from a supplier.
type GoodsReceipt struct {
	ReceiptID   string             `json:"id"`
	Date        time.Time          `json:"date"`
	SupplierID  string             `json:"supplierID"`
	DocNumber   string             `json:"docNumber"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	ReceivedBy  string             `json:"receivedBy"`
	Items       []GoodsReceiptItem `json:"items"`

	Supplier *Supplier `json:"supplier,omitempty"`
}

// GoodsReceiptItem is one received line. PurchasePrice becomes the product's purchase price.
type GoodsReceiptItem struct {
	ReceiptID     string          `json:"receiptID"`
	Position      int             `json:"position"`
	ProductID     string          `json:"productID"`
	Quantity      int64           `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Product       *Product        `json:"product,omitempty"`
}
