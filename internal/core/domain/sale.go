package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType is the kind of a sale payment.
type PaymentType string

const (
	PaymentCash PaymentType = "naqd"
	PaymentCard PaymentType = "karta"
	// PaymentDebt ("nasiya") is store credit: the amount is added to the customer's debt
	// instead of being collected.
	PaymentDebt PaymentType = "nasiya"
)

// Sale is an immutable record of goods sold to a customer by a seller.
type Sale struct {
	SaleID     string          `json:"id"`
	Date       time.Time       `json:"date"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	Total      decimal.Decimal `json:"total"`
	SellerID   string          `json:"sellerID"`
	CustomerID *string         `json:"customerID,omitempty"`
	Items      []CartItem      `json:"items"`
	Payments   []SalePayment   `json:"payments"`

	// Expanded references, populated on read.
	Seller   *Employee `json:"seller,omitempty"`
	Customer *Customer `json:"customer,omitempty"`
}

// CartItem is one sold line. Price is the sale price at the time of sale.
type CartItem struct {
	SaleID    string          `json:"saleID"`
	Position  int             `json:"position"`
	ProductID string          `json:"productID"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Product   *Product        `json:"product,omitempty"`
}

// SalePayment is one tender used to settle a sale.
type SalePayment struct {
	SaleID   string          `json:"saleID"`
	Position int             `json:"position"`
	Type     PaymentType     `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
}

// FirstDebtPayment returns the first payment of type PaymentDebt, or nil.
// Later debt payments in the same list are intentionally ignored.
func FirstDebtPayment(payments []SalePayment) *SalePayment {
	for i := range payments {
		if payments[i].Type == PaymentDebt {
			return &payments[i]
		}
	}
	return nil
}
