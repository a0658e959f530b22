package domain

import "github.com/shopspring/decimal"

// Customer is a store customer. Debt is the running amount owed to the store.
type Customer struct {
	CustomerID string          `json:"id"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Debt       decimal.Decimal `json:"debt"`
	AuditFields
}
