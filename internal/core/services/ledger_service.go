package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// productLedger owns Product.stock and Product.purchasePrice inside one unit of work.
// Every change is a read-modify-write on a row the store has locked for the rest of the unit.
type productLedger struct {
	store    portsrepo.ProductLedgerStore
	products map[string]domain.Product
	actorID  string
	now      time.Time
}

// openProductLedger locks the given products in ascending id order.
func openProductLedger(ctx context.Context, store portsrepo.ProductLedgerStore, productIDs []string, actorID string, now time.Time) (*productLedger, error) {
	ids := sortedUnique(productIDs)
	products, err := store.FindProductsByIDsForUpdate(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to lock products: %w", err)
	}
	return &productLedger{
		store:    store,
		products: products,
		actorID:  actorID,
		now:      now,
	}, nil
}

func (l *productLedger) locked(ctx context.Context, productID string) (domain.Product, error) {
	if p, ok := l.products[productID]; ok {
		return p, nil
	}
	found, err := l.store.FindProductsByIDsForUpdate(ctx, []string{productID})
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to lock product %s: %w", productID, err)
	}
	p, ok := found[productID]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %s: %w", productID, apperrors.ErrNotFound)
	}
	l.products[productID] = p
	return p, nil
}

func (l *productLedger) write(ctx context.Context, p domain.Product) error {
	p.LastUpdatedAt = l.now
	p.LastUpdatedBy = l.actorID
	if err := l.store.UpdateProductLedger(ctx, p); err != nil {
		return fmt.Errorf("failed to update product %s: %w", p.ProductID, err)
	}
	l.products[p.ProductID] = p
	return nil
}

// DecrementStock lowers stock unconditionally; the result may be negative.
func (l *productLedger) DecrementStock(ctx context.Context, productID string, qty int64) error {
	p, err := l.locked(ctx, productID)
	if err != nil {
		return err
	}
	p.Stock -= qty
	return l.write(ctx, p)
}

// IncrementStock raises stock by qty.
func (l *productLedger) IncrementStock(ctx context.Context, productID string, qty int64) error {
	p, err := l.locked(ctx, productID)
	if err != nil {
		return err
	}
	p.Stock += qty
	return l.write(ctx, p)
}

// SetPurchasePrice overwrites the purchase price.
func (l *productLedger) SetPurchasePrice(ctx context.Context, productID string, price decimal.Decimal) error {
	p, err := l.locked(ctx, productID)
	if err != nil {
		return err
	}
	p.PurchasePrice = price
	return l.write(ctx, p)
}

// Product returns the current state of a product touched by this ledger.
func (l *productLedger) Product(productID string) (domain.Product, bool) {
	p, ok := l.products[productID]
	return p, ok
}

// customerLedger owns Customer.debt inside one unit of work.
type customerLedger struct {
	store     portsrepo.CustomerLedgerStore
	customers map[string]domain.Customer
	actorID   string
	now       time.Time
}

func newCustomerLedger(store portsrepo.CustomerLedgerStore, actorID string, now time.Time) *customerLedger {
	return &customerLedger{
		store:     store,
		customers: make(map[string]domain.Customer),
		actorID:   actorID,
		now:       now,
	}
}

func (l *customerLedger) locked(ctx context.Context, customerID string) (domain.Customer, error) {
	if c, ok := l.customers[customerID]; ok {
		return c, nil
	}
	c, err := l.store.FindCustomerByIDForUpdate(ctx, customerID)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("failed to lock customer %s: %w", customerID, err)
	}
	l.customers[customerID] = *c
	return *c, nil
}

func (l *customerLedger) write(ctx context.Context, c domain.Customer) error {
	c.LastUpdatedAt = l.now
	c.LastUpdatedBy = l.actorID
	if err := l.store.UpdateCustomerDebt(ctx, c); err != nil {
		return fmt.Errorf("failed to update customer %s: %w", c.CustomerID, err)
	}
	l.customers[c.CustomerID] = c
	return nil
}

// AccrueDebt adds amount to the customer's debt.
func (l *customerLedger) AccrueDebt(ctx context.Context, customerID string, amount decimal.Decimal) error {
	c, err := l.locked(ctx, customerID)
	if err != nil {
		return err
	}
	c.Debt = c.Debt.Add(amount)
	return l.write(ctx, c)
}

// SettleDebt subtracts amount from the customer's debt. Paying more than is owed is a validation error.
func (l *customerLedger) SettleDebt(ctx context.Context, customerID string, amount decimal.Decimal) error {
	c, err := l.locked(ctx, customerID)
	if err != nil {
		return err
	}
	if amount.GreaterThan(c.Debt) {
		return fmt.Errorf("%w: payment %s exceeds current debt %s", apperrors.ErrValidation, amount.String(), c.Debt.String())
	}
	c.Debt = c.Debt.Sub(amount)
	return l.write(ctx, c)
}

// Customer returns the current state of a customer touched by this ledger.
func (l *customerLedger) Customer(customerID string) (domain.Customer, bool) {
	c, ok := l.customers[customerID]
	return c, ok
}

func sortedUnique(ids []string) []string {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
