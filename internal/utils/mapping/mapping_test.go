package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSaleMapping_NullableCustomer(t *testing.T) {
	now := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	anonymous := ToModelSale(domain.Sale{SaleID: "sale_1", Date: now, SellerID: "emp_1"})
	assert.False(t, anonymous.CustomerID.Valid)
	assert.Nil(t, ToDomainSale(anonymous).CustomerID)

	customerID := "cust_1"
	named := ToModelSale(domain.Sale{SaleID: "sale_2", Date: now, SellerID: "emp_1", CustomerID: &customerID, Total: decimal.NewFromInt(5)})
	assert.True(t, named.CustomerID.Valid)
	back := ToDomainSale(named)
	if assert.NotNil(t, back.CustomerID) {
		assert.Equal(t, "cust_1", *back.CustomerID)
	}
	assert.True(t, back.Total.Equal(decimal.NewFromInt(5)))
}

func TestToDomainAuditFields_NormalisesToUTC(t *testing.T) {
	loc := time.FixedZone("UZT", 5*60*60)
	local := time.Date(2024, 2, 1, 13, 0, 0, 0, loc)

	m := ToModelProduct(domain.Product{ProductID: "prod_1", AuditFields: domain.AuditFields{CreatedAt: local, LastUpdatedAt: local}})
	d := ToDomainProduct(m)

	assert.Equal(t, time.UTC, d.CreatedAt.Location())
	assert.True(t, local.Equal(d.CreatedAt))
}
