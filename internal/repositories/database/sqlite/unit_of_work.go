package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/jmoiron/sqlx"
)

// SQLiteUnitOfWork runs units of work in sqlx transactions.
type SQLiteUnitOfWork struct {
	db *sqlx.DB
}

func newSQLiteUnitOfWork(db *sqlx.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: db}
}

var _ portsrepo.UnitOfWork = (*SQLiteUnitOfWork)(nil)

// sqliteTxStore binds the ledger and transaction writers to one *sqlx.Tx.
type sqliteTxStore struct {
	*SQLiteProductRepository
	*SQLiteCustomerRepository
	*SQLiteSaleRepository
	*SQLiteGoodsReceiptRepository
}

var _ portsrepo.TxStore = (*sqliteTxStore)(nil)

func newSQLiteTxStore(tx *sqlx.Tx) *sqliteTxStore {
	return &sqliteTxStore{
		SQLiteProductRepository:      newSQLiteProductRepository(tx),
		SQLiteCustomerRepository:     newSQLiteCustomerRepository(tx),
		SQLiteSaleRepository:         newSQLiteSaleRepository(tx),
		SQLiteGoodsReceiptRepository: newSQLiteGoodsReceiptRepository(tx),
	}
}

func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxStore) error) error {
	tx, err := u.db.BeginTxx(ctx, nil)
	if err != nil {
		return mapSQLiteError("begin transaction", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			slog.Error("Failed to rollback sqlite transaction", "error", rbErr)
		}
	}()

	if err := fn(ctx, newSQLiteTxStore(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return mapSQLiteError("commit transaction", err)
	}
	return nil
}
