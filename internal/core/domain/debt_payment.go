package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtPayment records a customer paying back part of their debt.
type DebtPayment struct {
	DebtPaymentID string          `json:"id"`
	CustomerID    string          `json:"customerID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentType   PaymentType     `json:"paymentType"`
	Date          time.Time       `json:"date"`
	ReceivedBy    string          `json:"receivedBy"`
}
