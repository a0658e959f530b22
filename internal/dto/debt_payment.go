package dto

import (
	"time"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtPaymentRequest defines a repayment of customer debt. The customer comes from the path.
type CreateDebtPaymentRequest struct {
	Amount      decimal.Decimal    `json:"amount"`
	PaymentType domain.PaymentType `json:"paymentType" binding:"required"`
}

// DebtPaymentResponse defines the data returned for a debt payment.
type DebtPaymentResponse struct {
	ID          string             `json:"id"`
	CustomerID  string             `json:"customerId"`
	Amount      decimal.Decimal    `json:"amount"`
	PaymentType domain.PaymentType `json:"paymentType"`
	Date        time.Time          `json:"date"`
	Customer    CustomerResponse   `json:"customer"`
}

// ToDebtPaymentResponse converts a debt payment and the customer after the payment.
func ToDebtPaymentResponse(p *domain.DebtPayment, c *domain.Customer) DebtPaymentResponse {
	return DebtPaymentResponse{
		ID:          p.DebtPaymentID,
		CustomerID:  p.CustomerID,
		Amount:      p.Amount,
		PaymentType: p.PaymentType,
		Date:        p.Date,
		Customer:    ToCustomerResponse(c),
	}
}
