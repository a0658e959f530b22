package repositories

import (
	"context"

	"github.com/SscSPs/pos_backend/internal/core/domain"
)

// DebtPaymentWriter defines write operations for debt payments. Only usable inside a unit of work.
type DebtPaymentWriter interface {
	InsertDebtPayment(ctx context.Context, payment domain.DebtPayment) error
}
