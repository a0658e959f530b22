package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/pos_backend/internal/models"
	"github.com/SscSPs/pos_backend/internal/utils/mapping"
	"github.com/SscSPs/pos_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const goodsReceiptColumns = `receipt_id, receipt_date, supplier_id, doc_number, total_amount, received_by`

type PgxGoodsReceiptRepository struct {
	db querier
}

func newPgxGoodsReceiptRepository(db querier) *PgxGoodsReceiptRepository {
	return &PgxGoodsReceiptRepository{db: db}
}

var (
	_ portsrepo.GoodsReceiptReader = (*PgxGoodsReceiptRepository)(nil)
	_ portsrepo.GoodsReceiptWriter = (*PgxGoodsReceiptRepository)(nil)
)

func scanGoodsReceipt(row pgx.Row) (models.GoodsReceipt, error) {
	var m models.GoodsReceipt
	err := row.Scan(
		&m.ReceiptID,
		&m.ReceiptDate,
		&m.SupplierID,
		&m.DocNumber,
		&m.TotalAmount,
		&m.ReceivedBy,
	)
	return m, err
}

// InsertGoodsReceipt must be called within a transaction.
func (r *PgxGoodsReceiptRepository) InsertGoodsReceipt(ctx context.Context, receipt domain.GoodsReceipt) error {
	m := mapping.ToModelGoodsReceipt(receipt)
	query := `
		INSERT INTO goods_receipts (` + goodsReceiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query, m.ReceiptID, m.ReceiptDate, m.SupplierID, m.DocNumber, m.TotalAmount, m.ReceivedBy)
	if err != nil {
		return mapPgError("failed to insert goods receipt", err)
	}
	return nil
}

// InsertGoodsReceiptItem must be called within a transaction.
func (r *PgxGoodsReceiptRepository) InsertGoodsReceiptItem(ctx context.Context, item domain.GoodsReceiptItem) error {
	m := mapping.ToModelGoodsReceiptItem(item)
	query := `
		INSERT INTO goods_receipt_items (receipt_id, position, product_id, quantity, purchase_price)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.Exec(ctx, query, m.ReceiptID, m.Position, m.ProductID, m.Quantity, m.PurchasePrice)
	if err != nil {
		return mapPgError("failed to insert goods receipt item", err)
	}
	return nil
}

func (r *PgxGoodsReceiptRepository) FindGoodsReceiptByID(ctx context.Context, receiptID string) (*domain.GoodsReceipt, error) {
	query := `SELECT ` + goodsReceiptColumns + ` FROM goods_receipts WHERE receipt_id = $1;`
	m, err := scanGoodsReceipt(r.db.QueryRow(ctx, query, receiptID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goods receipt by ID %s: %w", receiptID, err)
	}
	receipt := mapping.ToDomainGoodsReceipt(m)

	rows, err := r.db.Query(ctx, `
		SELECT receipt_id, position, product_id, quantity, purchase_price
		FROM goods_receipt_items
		WHERE receipt_id = $1
		ORDER BY position;
	`, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for goods receipt %s: %w", receiptID, err)
	}
	defer rows.Close()

	receipt.Items = []domain.GoodsReceiptItem{}
	for rows.Next() {
		var item models.GoodsReceiptItem
		if err := rows.Scan(&item.ReceiptID, &item.Position, &item.ProductID, &item.Quantity, &item.PurchasePrice); err != nil {
			return nil, fmt.Errorf("failed to scan goods receipt item row: %w", err)
		}
		receipt.Items = append(receipt.Items, mapping.ToDomainGoodsReceiptItem(item))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goods receipt item rows: %w", err)
	}
	return &receipt, nil
}

func (r *PgxGoodsReceiptRepository) ListGoodsReceipts(ctx context.Context, limit int, nextToken *string) ([]domain.GoodsReceipt, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	var rows pgx.Rows
	var err error
	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, invalidTokenError(decodeErr)
		}
		rows, err = r.db.Query(ctx, `
			SELECT `+goodsReceiptColumns+`
			FROM goods_receipts
			WHERE (receipt_date, receipt_id) < ($1, $2)
			ORDER BY receipt_date DESC, receipt_id DESC
			LIMIT $3;
		`, lastDate, lastID, fetchLimit)
	} else {
		rows, err = r.db.Query(ctx, `
			SELECT `+goodsReceiptColumns+`
			FROM goods_receipts
			ORDER BY receipt_date DESC, receipt_id DESC
			LIMIT $1;
		`, fetchLimit)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query goods receipts: %w", err)
	}
	defer rows.Close()

	ms := make([]models.GoodsReceipt, 0, fetchLimit)
	for rows.Next() {
		m, err := scanGoodsReceipt(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan goods receipt row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating goods receipt rows: %w", err)
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
