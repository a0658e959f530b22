package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/pos_backend/internal/models"
	"github.com/SscSPs/pos_backend/internal/utils/mapping"
	"github.com/SscSPs/pos_backend/internal/utils/pagination"
	"github.com/jmoiron/sqlx"
)

const goodsReceiptColumns = `receipt_id, receipt_date, supplier_id, doc_number, total_amount, received_by`

type SQLiteGoodsReceiptRepository struct {
	db sqlx.ExtContext
}

func newSQLiteGoodsReceiptRepository(db sqlx.ExtContext) *SQLiteGoodsReceiptRepository {
	return &SQLiteGoodsReceiptRepository{db: db}
}

var (
	_ portsrepo.GoodsReceiptReader = (*SQLiteGoodsReceiptRepository)(nil)
	_ portsrepo.GoodsReceiptWriter = (*SQLiteGoodsReceiptRepository)(nil)
)

// InsertGoodsReceipt must be called within a transaction.
func (r *SQLiteGoodsReceiptRepository) InsertGoodsReceipt(ctx context.Context, receipt domain.GoodsReceipt) error {
	query := `
		INSERT INTO goods_receipts (` + goodsReceiptColumns + `)
		VALUES (:receipt_id, :receipt_date, :supplier_id, :doc_number, :total_amount, :received_by)`
	if _, err := sqlx.NamedExecContext(ctx, r.db, query, mapping.ToModelGoodsReceipt(receipt)); err != nil {
		return mapSQLiteError("failed to insert goods receipt", err)
	}
	return nil
}

// InsertGoodsReceiptItem must be called within a transaction.
func (r *SQLiteGoodsReceiptRepository) InsertGoodsReceiptItem(ctx context.Context, item domain.GoodsReceiptItem) error {
	query := `
		INSERT INTO goods_receipt_items (receipt_id, position, product_id, quantity, purchase_price)
		VALUES (:receipt_id, :position, :product_id, :quantity, :purchase_price)`
	if _, err := sqlx.NamedExecContext(ctx, r.db, query, mapping.ToModelGoodsReceiptItem(item)); err != nil {
		return mapSQLiteError("failed to insert goods receipt item", err)
	}
	return nil
}

func (r *SQLiteGoodsReceiptRepository) FindGoodsReceiptByID(ctx context.Context, receiptID string) (*domain.GoodsReceipt, error) {
	var m models.GoodsReceipt
	if err := sqlx.GetContext(ctx, r.db, &m, `SELECT `+goodsReceiptColumns+` FROM goods_receipts WHERE receipt_id = ?`, receiptID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapSQLiteError("failed to find goods receipt by ID "+receiptID, err)
	}
	receipt := mapping.ToDomainGoodsReceipt(m)

	items := []models.GoodsReceiptItem{}
	if err := sqlx.SelectContext(ctx, r.db, &items, `
		SELECT receipt_id, position, product_id, quantity, purchase_price
		FROM goods_receipt_items
		WHERE receipt_id = ?
		ORDER BY position`, receiptID); err != nil {
		return nil, mapSQLiteError("failed to query items for goods receipt "+receiptID, err)
	}
	receipt.Items = make([]domain.GoodsReceiptItem, len(items))
	for i, item := range items {
		receipt.Items[i] = mapping.ToDomainGoodsReceiptItem(item)
	}
	return &receipt, nil
}

func (r *SQLiteGoodsReceiptRepository) ListGoodsReceipts(ctx context.Context, limit int, nextToken *string) ([]domain.GoodsReceipt, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	ms := make([]models.GoodsReceipt, 0, fetchLimit)
	var err error
	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, invalidTokenError(decodeErr)
		}
		err = sqlx.SelectContext(ctx, r.db, &ms, `
			SELECT `+goodsReceiptColumns+`
			FROM goods_receipts
			WHERE (receipt_date, receipt_id) < (?, ?)
			ORDER BY receipt_date DESC, receipt_id DESC
			LIMIT ?`, lastDate, lastID, fetchLimit)
	} else {
		err = sqlx.SelectContext(ctx, r.db, &ms, `
			SELECT `+goodsReceiptColumns+`
			FROM goods_receipts
			ORDER BY receipt_date DESC, receipt_id DESC
			LIMIT ?`, fetchLimit)
	}
	if err != nil {
		return nil, nil, mapSQLiteError("failed to query goods receipts", err)
	}

	var nextTokenVal *string
	if len(ms) > limit {
		last := ms[limit-1]
		token := pagination.EncodeToken(last.ReceiptDate, last.ReceiptID)
		nextTokenVal = &token
		ms = ms[:limit]
	}

	receipts := make([]domain.GoodsReceipt, len(ms))
	for i, m := range ms {
		receipts[i] = mapping.ToDomainGoodsReceipt(m)
	}
	return receipts, nextTokenVal, nil
}
