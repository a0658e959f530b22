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

const saleColumns = `sale_id, sale_date, subtotal, discount, total, seller_id, customer_id`

type PgxSaleRepository struct {
	db querier
}

func newPgxSaleRepository(db querier) *PgxSaleRepository {
	return &PgxSaleRepository{db: db}
}

var (
	_ portsrepo.SaleReader = (*PgxSaleRepository)(nil)
	_ portsrepo.SaleWriter = (*PgxSaleRepository)(nil)
)

func scanSale(row pgx.Row) (models.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID,
		&m.SaleDate,
		&m.Subtotal,
		&m.Discount,
		&m.Total,
		&m.SellerID,
		&m.CustomerID,
	)
	return m, err
}

// InsertSale must be called within a transaction.
func (r *PgxSaleRepository) InsertSale(ctx context.Context, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query, m.SaleID, m.SaleDate, m.Subtotal, m.Discount, m.Total, m.SellerID, m.CustomerID)
	if err != nil {
		return mapPgError("failed to insert sale", err)
	}
	return nil
}

// InsertCartItem must be called within a transaction.
func (r *PgxSaleRepository) InsertCartItem(ctx context.Context, item domain.CartItem) error {
	m := mapping.ToModelCartItem(item)
	query := `
		INSERT INTO cart_items (sale_id, position, product_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.Exec(ctx, query, m.SaleID, m.Position, m.ProductID, m.Quantity, m.Price)
	if err != nil {
		return mapPgError("failed to insert cart item", err)
	}
	return nil
}

// InsertSalePayment must be called within a transaction.
func (r *PgxSaleRepository) InsertSalePayment(ctx context.Context, payment domain.SalePayment) error {
	m := mapping.ToModelSalePayment(payment)
	query := `
		INSERT INTO sale_payments (sale_id, position, payment_type, amount)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.db.Exec(ctx, query, m.SaleID, m.Position, m.PaymentType, m.Amount)
	if err != nil {
		return mapPgError("failed to insert sale payment", err)
	}
	return nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`
	m, err := scanSale(r.db.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}
	sale := mapping.ToDomainSale(m)

	itemRows, err := r.db.Query(ctx, `
		SELECT sale_id, position, product_id, quantity, price
		FROM cart_items
		WHERE sale_id = $1
		ORDER BY position;
	`, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items for sale %s: %w", saleID, err)
	}
	defer itemRows.Close()

	sale.Items = []domain.CartItem{}
	for itemRows.Next() {
		var item models.CartItem
		if err := itemRows.Scan(&item.SaleID, &item.Position, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan cart item row: %w", err)
		}
		sale.Items = append(sale.Items, mapping.ToDomainCartItem(item))
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart item rows: %w", err)
	}

	paymentRows, err := r.db.Query(ctx, `
		SELECT sale_id, position, payment_type, amount
		FROM sale_payments
		WHERE sale_id = $1
		ORDER BY position;
	`, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for sale %s: %w", saleID, err)
	}
	defer paymentRows.Close()

	sale.Payments = []domain.SalePayment{}
	for paymentRows.Next() {
		var p models.SalePayment
		if err := paymentRows.Scan(&p.SaleID, &p.Position, &p.PaymentType, &p.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan sale payment row: %w", err)
		}
		sale.Payments = append(sale.Payments, mapping.ToDomainSalePayment(p))
	}
	if err := paymentRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale payment rows: %w", err)
	}

	return &sale, nil
}

func (r *PgxSaleRepository) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells whether there is a next page.
	fetchLimit := limit + 1

	var rows pgx.Rows
	var err error
	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, invalidTokenError(decodeErr)
		}
		rows, err = r.db.Query(ctx, `
			SELECT `+saleColumns+`
			FROM sales
			WHERE (sale_date, sale_id) < ($1, $2)
			ORDER BY sale_date DESC, sale_id DESC
			LIMIT $3;
		`, lastDate, lastID, fetchLimit)
	} else {
		rows, err = r.db.Query(ctx, `
			SELECT `+saleColumns+`
			FROM sales
			ORDER BY sale_date DESC, sale_id DESC
			LIMIT $1;
		`, fetchLimit)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	ms := make([]models.Sale, 0, fetchLimit)
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating sale rows: %w", err)
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
