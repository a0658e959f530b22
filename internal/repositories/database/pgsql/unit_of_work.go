package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUnitOfWork runs units of work in pgx transactions.
type PgxUnitOfWork struct {
	BaseRepository
}

func newPgxUnitOfWork(pool *pgxpool.Pool) *PgxUnitOfWork {
	return &PgxUnitOfWork{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UnitOfWork = (*PgxUnitOfWork)(nil)

// pgxTxStore binds the ledger and transaction writers to one pgx.Tx.
type pgxTxStore struct {
	*PgxProductRepository
	*PgxCustomerRepository
	*PgxSaleRepository
	*PgxGoodsReceiptRepository
}

var _ portsrepo.TxStore = (*pgxTxStore)(nil)

func newPgxTxStore(tx pgx.Tx) *pgxTxStore {
	return &pgxTxStore{
		PgxProductRepository:      newPgxProductRepository(tx),
		PgxCustomerRepository:     newPgxCustomerRepository(tx),
		PgxSaleRepository:         newPgxSaleRepository(tx),
		PgxGoodsReceiptRepository: newPgxGoodsReceiptRepository(tx),
	}
}

func (u *PgxUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxStore) error) error {
	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	defer u.Rollback(ctx, tx) // No-op after a successful commit.

	if err := fn(ctx, newPgxTxStore(tx)); err != nil {
		return err
	}
	return u.Commit(ctx, tx)
}
