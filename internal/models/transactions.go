package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a row of the sales table.
type Sale struct {
	SaleID     string          `db:"sale_id"`
	SaleDate   time.Time       `db:"sale_date"`
	Subtotal   decimal.Decimal `db:"subtotal"`
	Discount   decimal.Decimal `db:"discount"`
	Total      decimal.Decimal `db:"total"`
	SellerID   string          `db:"seller_id"`
	CustomerID sql.NullString  `db:"customer_id"` // Nullable
}

// CartItem is a row of the cart_items table, keyed by (sale_id, position).
type CartItem struct {
	SaleID    string          `db:"sale_id"`
	Position  int             `db:"position"`
	ProductID string          `db:"product_id"`
	Quantity  int64           `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}

// SalePayment is a row of the sale_payments table, keyed by (sale_id, position).
type SalePayment struct {
	SaleID      string          `db:"sale_id"`
	Position    int             `db:"position"`
	PaymentType string          `db:"payment_type"`
	Amount      decimal.Decimal `db:"amount"`
}

// GoodsReceipt is a row of the goods_receipts table.
type GoodsReceipt struct {
	ReceiptID   string          `db:"receipt_id"`
	ReceiptDate time.Time       `db:"receipt_date"`
	SupplierID  string          `db:"supplier_id"`
	DocNumber   string          `db:"doc_number"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	ReceivedBy  string          `db:"received_by"`
}

// GoodsReceiptItem is a row of the goods_receipt_items table, keyed by (receipt_id, position).
type GoodsReceiptItem struct {
	ReceiptID     string          `db:"receipt_id"`
	Position      int             `db:"position"`
	ProductID     string          `db:"product_id"`
	Quantity      int64           `db:"quantity"`
	PurchasePrice decimal.Decimal `db:"purchase_price"`
}

// DebtPayment is a row of the debt_payments table.
type DebtPayment struct {
	DebtPaymentID string          `db:"debt_payment_id"`
	CustomerID    string          `db:"customer_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentType   string          `db:"payment_type"`
	PaymentDate   time.Time       `db:"payment_date"`
	ReceivedBy    string          `db:"received_by"`
}
