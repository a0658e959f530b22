package models

import (
	"github.com/shopspring/decimal"
)

// Product is a row of the products table.
type Product struct {
	ProductID     string          `db:"product_id"`
	Name          string          `db:"name"`
	Barcode       string          `db:"barcode"`
	Unit          string          `db:"unit"`
	SalePrice     decimal.Decimal `db:"sale_price"`
	PurchasePrice decimal.Decimal `db:"purchase_price"`
	Stock         int64           `db:"stock"`
	AuditFields
}

// Customer is a row of the customers table.
type Customer struct {
	CustomerID string          `db:"customer_id"`
	Name       string          `db:"name"`
	Phone      string          `db:"phone"`
	Debt       decimal.Decimal `db:"debt"`
	AuditFields
}

// Supplier is a row of the suppliers table.
type Supplier struct {
	SupplierID string `db:"supplier_id"`
	Name       string `db:"name"`
	Phone      string `db:"phone"`
	Address    string `db:"address"`
	AuditFields
}

// Unit is a row of the units table.
type Unit struct {
	UnitID string `db:"unit_id"`
	Name   string `db:"name"`
	AuditFields
}

// Employee is a row of the employees table.
type Employee struct {
	EmployeeID string `db:"employee_id"`
	Name       string `db:"name"`
	Phone      string `db:"phone"`
	Role       string `db:"role"`
	PinHash    string `db:"pin_hash"`
	AuditFields
}
