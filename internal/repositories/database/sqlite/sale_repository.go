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

const saleColumns = `sale_id, sale_date, subtotal, discount, total, seller_id, customer_id`

type SQLiteSaleRepository struct {
	db sqlx.ExtContext
}

func newSQLiteSaleRepository(db sqlx.ExtContext) *SQLiteSaleRepository {
	return &SQLiteSaleRepository{db: db}
}

var (
	_ portsrepo.SaleReader = (*SQLiteSaleRepository)(nil)
	_ portsrepo.SaleWriter = (*SQLiteSaleRepository)(nil)
)

// InsertSale must be called within a transaction.
func (r *SQLiteSaleRepository) InsertSale(ctx context.Context, sale domain.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES (:sale_id, :sale_date, :subtotal, :discount, :total, :seller_id, :customer_id)`
	if _, err := sqlx.NamedExecContext(ctx, r.db, query, mapping.ToModelSale(sale)); err != nil {
		return mapSQLiteError("failed to insert sale", err)
	}
	return nil
}

// InsertCartItem must be called within a transaction.
func (r *SQLiteSaleRepository) InsertCartItem(ctx context.Context, item domain.CartItem) error {
	query := `
		INSERT INTO cart_items (sale_id, position, product_id, quantity, price)
		VALUES (:sale_id, :position, :product_id, :quantity, :price)`
	if _, err := sqlx.NamedExecContext(ctx, r.db, query, mapping.ToModelCartItem(item)); err != nil {
		return mapSQLiteError("failed to insert cart item", err)
	}
	return nil
}

// InsertSalePayment must be called within a transaction.
func (r *SQLiteSaleRepository) InsertSalePayment(ctx context.Context, payment domain.SalePayment) error {
	query := `
		INSERT INTO sale_payments (sale_id, position, payment_type, amount)
		VALUES (:sale_id, :position, :payment_type, :amount)`
	if _, err := sqlx.NamedExecContext(ctx, r.db, query, mapping.ToModelSalePayment(payment)); err != nil {
		return mapSQLiteError("failed to insert sale payment", err)
	}
	return nil
}

func (r *SQLiteSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	var m models.Sale
	if err := sqlx.GetContext(ctx, r.db, &m, `SELECT `+saleColumns+` FROM sales WHERE sale_id = ?`, saleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapSQLiteError("failed to find sale by ID "+saleID, err)
	}
	sale := mapping.ToDomainSale(m)

	items := []models.CartItem{}
	if err := sqlx.SelectContext(ctx, r.db, &items, `
		SELECT sale_id, position, product_id, quantity, price
		FROM cart_items
		WHERE sale_id = ?
		ORDER BY position`, saleID); err != nil {
		return nil, mapSQLiteError("failed to query cart items for sale "+saleID, err)
	}
	sale.Items = make([]domain.CartItem, len(items))
	for i, item := range items {
		sale.Items[i] = mapping.ToDomainCartItem(item)
	}

	payments := []models.SalePayment{}
	if err := sqlx.SelectContext(ctx, r.db, &payments, `
		SELECT sale_id, position, payment_type, amount
		FROM sale_payments
		WHERE sale_id = ?
		ORDER BY position`, saleID); err != nil {
		return nil, mapSQLiteError("failed to query payments for sale "+saleID, err)
	}
	sale.Payments = make([]domain.SalePayment, len(payments))
	for i, p := range payments {
		sale.Payments[i] = mapping.ToDomainSalePayment(p)
	}

	return &sale, nil
}

func (r *SQLiteSaleRepository) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	ms := make([]models.Sale, 0, fetchLimit)
	var err error
	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, invalidTokenError(decodeErr)
		}
		err = sqlx.SelectContext(ctx, r.db, &ms, `
			SELECT `+saleColumns+`
			FROM sales
			WHERE (sale_date, sale_id) < (?, ?)
			ORDER BY sale_date DESC, sale_id DESC
			LIMIT ?`, lastDate, lastID, fetchLimit)
	} else {
		err = sqlx.SelectContext(ctx, r.db, &ms, `
			SELECT `+saleColumns+`
			FROM sales
			ORDER BY sale_date DESC, sale_id DESC
			LIMIT ?`, fetchLimit)
	}
	if err != nil {
		return nil, nil, mapSQLiteError("failed to query sales", err)
	}

	var nextTokenVal *string
	if len(ms) > limit {
		last := ms[limit-1]
		token := pagination.EncodeToken(last.SaleDate, last.SaleID)
		nextTokenVal = &token
		ms = ms[:limit]
	}

	sales := make([]domain.Sale, len(ms))
	for i, m := range ms {
		sales[i] = mapping.ToDomainSale(m)
	}
	return sales, nextTokenVal, nil
}
