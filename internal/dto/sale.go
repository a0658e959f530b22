package dto

import (
	"time"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CartItemRequest is one line of a sale as sent by the terminal.
type CartItemRequest struct {
	ProductID string          `json:"productId" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
}

// SalePaymentRequest is one tender of a sale.
type SalePaymentRequest struct {
	Type   domain.PaymentType `json:"type" binding:"required"`
	Amount decimal.Decimal    `json:"amount"`
}

// CreateSaleRequest defines the data needed to record a sale.
// Subtotal, Discount and Total are stored as given.
type CreateSaleRequest struct {
	Items      []CartItemRequest    `json:"items" binding:"required,min=1,dive"`
	Subtotal   decimal.Decimal      `json:"subtotal"`
	Discount   decimal.Decimal      `json:"discount"`
	Total      decimal.Decimal      `json:"total"`
	Payments   []SalePaymentRequest `json:"payments" binding:"required,min=1,dive"`
	CustomerID *string              `json:"customerId"`
}

// CartItemResponse is a sold line with its product expanded.
type CartItemResponse struct {
	ProductID string           `json:"productId"`
	Product   *ProductResponse `json:"product,omitempty"`
	Quantity  int64            `json:"quantity"`
	Price     decimal.Decimal  `json:"price"`
}

// SalePaymentResponse is one tender of a recorded sale.
type SalePaymentResponse struct {
	Type   domain.PaymentType `json:"type"`
	Amount decimal.Decimal    `json:"amount"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	ID         string                `json:"id"`
	Date       time.Time             `json:"date"`
	Items      []CartItemResponse    `json:"items"`
	Subtotal   decimal.Decimal       `json:"subtotal"`
	Discount   decimal.Decimal       `json:"discount"`
	Total      decimal.Decimal       `json:"total"`
	Payments   []SalePaymentResponse `json:"payments"`
	CustomerID *string               `json:"customerId,omitempty"`
	Customer   *CustomerResponse     `json:"customer"`
	SellerID   string                `json:"sellerId"`
	Seller     *EmployeeResponse     `json:"seller,omitempty"`
}

// ListSalesResponse wraps a page of sales.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToSaleResponse converts a domain.Sale (with whatever references are expanded) to SaleResponse DTO
func ToSaleResponse(s *domain.Sale) SaleResponse {
	items := make([]CartItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = CartItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if item.Product != nil {
			p := ToProductResponse(item.Product)
			items[i].Product = &p
		}
	}
	payments := make([]SalePaymentResponse, len(s.Payments))
	for i, p := range s.Payments {
		payments[i] = SalePaymentResponse{Type: p.Type, Amount: p.Amount}
	}

	res := SaleResponse{
		ID:         s.SaleID,
		Date:       s.Date,
		Items:      items,
		Subtotal:   s.Subtotal,
		Discount:   s.Discount,
		Total:      s.Total,
		Payments:   payments,
		CustomerID: s.CustomerID,
		SellerID:   s.SellerID,
	}
	if s.Customer != nil {
		c := ToCustomerResponse(s.Customer)
		res.Customer = &c
	}
	if s.Seller != nil {
		e := ToEmployeeResponse(s.Seller)
		res.Seller = &e
	}
	return res
}

// ToListSalesResponse converts a page of sales.
func ToListSalesResponse(sales []domain.Sale, nextToken *string) ListSalesResponse {
	res := make([]SaleResponse, len(sales))
	for i := range sales {
		res[i] = ToSaleResponse(&sales[i])
	}
	return ListSalesResponse{Sales: res, NextToken: nextToken}
}
