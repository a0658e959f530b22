package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema mirrors the up migrations under migrations/. Money is stored as TEXT so
// decimals round-trip exactly; times are DATETIME so the driver parses them back.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		employee_id     TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		phone           TEXT NOT NULL UNIQUE,
		role            TEXT NOT NULL,
		pin_hash        TEXT NOT NULL,
		created_at      DATETIME NOT NULL,
		created_by      TEXT NOT NULL,
		last_updated_at DATETIME NOT NULL,
		last_updated_by TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		product_id      TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		barcode         TEXT NOT NULL DEFAULT '',
		unit            TEXT NOT NULL DEFAULT '',
		sale_price      TEXT NOT NULL DEFAULT '0',
		purchase_price  TEXT NOT NULL DEFAULT '0',
		stock           INTEGER NOT NULL DEFAULT 0,
		created_at      DATETIME NOT NULL,
		created_by      TEXT NOT NULL,
		last_updated_at DATETIME NOT NULL,
		last_updated_by TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_barcode ON products (barcode)`,
	`CREATE TABLE IF NOT EXISTS units (
		unit_id         TEXT PRIMARY KEY,
		name            TEXT NOT NULL UNIQUE,
		created_at      DATETIME NOT NULL,
		created_by      TEXT NOT NULL,
		last_updated_at DATETIME NOT NULL,
		last_updated_by TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id     TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		phone           TEXT NOT NULL DEFAULT '',
		debt            TEXT NOT NULL DEFAULT '0',
		created_at      DATETIME NOT NULL,
		created_by      TEXT NOT NULL,
		last_updated_at DATETIME NOT NULL,
		last_updated_by TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		supplier_id     TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		phone           TEXT NOT NULL DEFAULT '',
		address         TEXT NOT NULL DEFAULT '',
		created_at      DATETIME NOT NULL,
		created_by      TEXT NOT NULL,
		last_updated_at DATETIME NOT NULL,
		last_updated_by TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		sale_id     TEXT PRIMARY KEY,
		sale_date   DATETIME NOT NULL,
		subtotal    TEXT NOT NULL,
		discount    TEXT NOT NULL,
		total       TEXT NOT NULL,
		seller_id   TEXT NOT NULL REFERENCES employees (employee_id),
		customer_id TEXT REFERENCES customers (customer_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_date_id ON sales (sale_date, sale_id)`,
	`CREATE TABLE IF NOT EXISTS cart_items (
		sale_id    TEXT NOT NULL REFERENCES sales (sale_id),
		position   INTEGER NOT NULL,
		product_id TEXT NOT NULL REFERENCES products (product_id),
		quantity   INTEGER NOT NULL CHECK (quantity > 0),
		price      TEXT NOT NULL,
		PRIMARY KEY (sale_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS sale_payments (
		sale_id      TEXT NOT NULL REFERENCES sales (sale_id),
		position     INTEGER NOT NULL,
		payment_type TEXT NOT NULL,
		amount       TEXT NOT NULL,
		PRIMARY KEY (sale_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS goods_receipts (
		receipt_id   TEXT PRIMARY KEY,
		receipt_date DATETIME NOT NULL,
		supplier_id  TEXT NOT NULL REFERENCES suppliers (supplier_id),
		doc_number   TEXT NOT NULL DEFAULT '',
		total_amount TEXT NOT NULL,
		received_by  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_goods_receipts_date_id ON goods_receipts (receipt_date, receipt_id)`,
	`CREATE TABLE IF NOT EXISTS goods_receipt_items (
		receipt_id     TEXT NOT NULL REFERENCES goods_receipts (receipt_id),
		position       INTEGER NOT NULL,
		product_id     TEXT NOT NULL REFERENCES products (product_id),
		quantity       INTEGER NOT NULL CHECK (quantity > 0),
		purchase_price TEXT NOT NULL,
		PRIMARY KEY (receipt_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS debt_payments (
		debt_payment_id TEXT PRIMARY KEY,
		customer_id     TEXT NOT NULL REFERENCES customers (customer_id),
		amount          TEXT NOT NULL,
		payment_type    TEXT NOT NULL,
		payment_date    DATETIME NOT NULL,
		received_by     TEXT NOT NULL
	)`,
}

// ApplySchema creates any missing tables and indexes.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply sqlite schema: %w", err)
		}
	}
	return nil
}
