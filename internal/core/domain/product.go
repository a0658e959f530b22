package domain

import (
	"github.com/shopspring/decimal"
)

// Product is a sellable item together with its ledger fields.
// Stock and PurchasePrice are owned by the product ledger; stock may go negative.
type Product struct {
	ProductID     string          `json:"id"`
	Name          string          `json:"name"`
	Barcode       string          `json:"barcode"`
	Unit          string          `json:"unit"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Stock         int64           `json:"stock"`
	AuditFields
}
