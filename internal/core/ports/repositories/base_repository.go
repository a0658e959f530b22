package repositories

import (
	"context"
)

// UnitOfWork runs a set of reads and writes that commit or roll back together.
type UnitOfWork interface {
	// WithinTx begins a transaction, hands fn a TxStore bound to it and commits when fn
	// returns nil. Any error from fn, or from the commit itself, rolls the transaction back
	// before WithinTx returns.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx TxStore) error) error
}

// TxStore is the set of writes available inside a unit of work.
type TxStore interface {
	ProductLedgerStore
	CustomerLedgerStore
	SaleWriter
	GoodsReceiptWriter
	DebtPaymentWriter
}
