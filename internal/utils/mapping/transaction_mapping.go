package mapping

import (
	"database/sql"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/SscSPs/pos_backend/internal/models"
)

// ToModelSale converts a domain Sale header to a model Sale
func ToModelSale(d domain.Sale) models.Sale {
	m := models.Sale{
		SaleID:   d.SaleID,
		SaleDate: d.Date,
		Subtotal: d.Subtotal,
		Discount: d.Discount,
		Total:    d.Total,
		SellerID: d.SellerID,
	}
	if d.CustomerID != nil {
		m.CustomerID = sql.NullString{String: *d.CustomerID, Valid: true}
	}
	return m
}

// ToDomainSale converts a model Sale to a domain Sale without items or payments
func ToDomainSale(m models.Sale) domain.Sale {
	d := domain.Sale{
		SaleID:   m.SaleID,
		Date:     m.SaleDate.UTC(),
		Subtotal: m.Subtotal,
		Discount: m.Discount,
		Total:    m.Total,
		SellerID: m.SellerID,
	}
	if m.CustomerID.Valid {
		customerID := m.CustomerID.String
		d.CustomerID = &customerID
	}
	return d
}

// ToModelCartItem converts a domain CartItem to a model CartItem
func ToModelCartItem(d domain.CartItem) models.CartItem {
	return models.CartItem{
		SaleID:    d.SaleID,
		Position:  d.Position,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
		Price:     d.Price,
	}
}

// ToDomainCartItem converts a model CartItem to a domain CartItem
func ToDomainCartItem(m models.CartItem) domain.CartItem {
	return domain.CartItem{
		SaleID:    m.SaleID,
		Position:  m.Position,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Price:     m.Price,
	}
}

// ToModelSalePayment converts a domain SalePayment to a model SalePayment
func ToModelSalePayment(d domain.SalePayment) models.SalePayment {
	return models.SalePayment{
		SaleID:      d.SaleID,
		Position:    d.Position,
		PaymentType: string(d.Type),
		Amount:      d.Amount,
	}
}

// ToDomainSalePayment converts a model SalePayment to a domain SalePayment
func ToDomainSalePayment(m models.SalePayment) domain.SalePayment {
	return domain.SalePayment{
		SaleID:   m.SaleID,
		Position: m.Position,
		Type:     domain.PaymentType(m.PaymentType),
		Amount:   m.Amount,
	}
}

// ToModelGoodsReceipt converts a domain GoodsReceipt header to a model GoodsReceipt
func ToModelGoodsReceipt(d domain.GoodsReceipt) models.GoodsReceipt {
	return models.GoodsReceipt{
		ReceiptID:   d.ReceiptID,
		ReceiptDate: d.Date,
		SupplierID:  d.SupplierID,
		DocNumber:   d.DocNumber,
		TotalAmount: d.TotalAmount,
		ReceivedBy:  d.ReceivedBy,
	}
}

// ToDomainGoodsReceipt converts a model GoodsReceipt to a domain GoodsReceipt without items
func ToDomainGoodsReceipt(m models.GoodsReceipt) domain.GoodsReceipt {
	return domain.GoodsReceipt{
		ReceiptID:   m.ReceiptID,
		Date:        m.ReceiptDate.UTC(),
		SupplierID:  m.SupplierID,
		DocNumber:   m.DocNumber,
		TotalAmount: m.TotalAmount,
		ReceivedBy:  m.ReceivedBy,
	}
}

// ToModelGoodsReceiptItem converts a domain GoodsReceiptItem to a model GoodsReceiptItem
func ToModelGoodsReceiptItem(d domain.GoodsReceiptItem) models.GoodsReceiptItem {
	return models.GoodsReceiptItem{
		ReceiptID:     d.ReceiptID,
		Position:      d.Position,
		ProductID:     d.ProductID,
		Quantity:      d.Quantity,
		PurchasePrice: d.PurchasePrice,
	}
}

// ToDomainGoodsReceiptItem converts a model GoodsReceiptItem to a domain GoodsReceiptItem
func ToDomainGoodsReceiptItem(m models.GoodsReceiptItem) domain.GoodsReceiptItem {
	return domain.GoodsReceiptItem{
		ReceiptID:     m.ReceiptID,
		Position:      m.Position,
		ProductID:     m.ProductID,
		Quantity:      m.Quantity,
		PurchasePrice: m.PurchasePrice,
	}
}

// ToModelDebtPayment converts a domain DebtPayment to a model DebtPayment
func ToModelDebtPayment(d domain.DebtPayment) models.DebtPayment {
	return models.DebtPayment{
		DebtPaymentID: d.DebtPaymentID,
		CustomerID:    d.CustomerID,
		Amount:        d.Amount,
		PaymentType:   string(d.PaymentType),
		PaymentDate:   d.Date,
		ReceivedBy:    d.ReceivedBy,
	}
}
