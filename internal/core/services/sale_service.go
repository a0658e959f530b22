package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/SscSPs/pos_backend/internal/metrics"
)

// saleService builds sales and serves them back with their references expanded.
type saleService struct {
	BaseService
	saleRepo     portsrepo.SaleReader
	productRepo  portsrepo.ProductReader
	customerRepo portsrepo.CustomerReader
	employeeRepo portsrepo.EmployeeReader
	uow          portsrepo.UnitOfWork
}

// NewSaleService creates a new sale service.
func NewSaleService(
	saleRepo portsrepo.SaleReader,
	productRepo portsrepo.ProductReader,
	customerRepo portsrepo.CustomerReader,
	employeeRepo portsrepo.EmployeeReader,
	uow portsrepo.UnitOfWork,
	options ...ServiceOption,
) portssvc.SaleSvcFacade {
	return &saleService{
		BaseService:  newBaseService(options...),
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		uow:          uow,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func validateSaleRequest(req dto.CreateSaleRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	for i, item := range req.Items {
		if err := requireNonNegative(fmt.Sprintf("items[%d].price", i), item.Price); err != nil {
			return err
		}
	}
	for i, p := range req.Payments {
		if err := requirePositive(fmt.Sprintf("payments[%d].amount", i), p.Amount); err != nil {
			return err
		}
	}
	if err := requireNonNegative("subtotal", req.Subtotal); err != nil {
		return err
	}
	if err := requireNonNegative("discount", req.Discount); err != nil {
		return err
	}
	if err := requireNonNegative("total", req.Total); err != nil {
		return err
	}
	if req.CustomerID != nil && *req.CustomerID == "" {
		return fmt.Errorf("%w: customerId must not be empty when given", apperrors.ErrValidation)
	}
	return nil
}

// CreateSale records a sale on behalf of actorID.
// Cart items, payments, the stock decrement of every line and the debt accrual of the first
// "nasiya" payment commit together or not at all.
func (s *saleService) CreateSale(ctx context.Context, actorID string, req dto.CreateSaleRequest) (*domain.Sale, error) {
	if err := validateSaleRequest(req); err != nil {
		s.recordFailure(ctx, err, actorID)
		return nil, err
	}

	seller, err := resolveActor(ctx, s.employeeRepo, actorID)
	if err != nil {
		s.recordFailure(ctx, err, actorID)
		return nil, err
	}

	productIDs := make([]string, len(req.Items))
	for i, item := range req.Items {
		productIDs[i] = item.ProductID
	}
	if err := s.resolveProducts(ctx, productIDs); err != nil {
		s.recordFailure(ctx, err, actorID)
		return nil, err
	}

	var customer *domain.Customer
	if req.CustomerID != nil {
		customer, err = s.customerRepo.FindCustomerByID(ctx, *req.CustomerID)
		if err != nil {
			s.recordFailure(ctx, err, actorID)
			return nil, fmt.Errorf("failed to resolve customer %s: %w", *req.CustomerID, err)
		}
	}

	now := s.now()
	sale := domain.Sale{
		SaleID:     s.IDs.NewID(domain.SaleIDPrefix),
		Date:       now,
		Subtotal:   req.Subtotal,
		Discount:   req.Discount,
		Total:      req.Total,
		SellerID:   seller.EmployeeID,
		CustomerID: req.CustomerID,
		Items:      make([]domain.CartItem, len(req.Items)),
		Payments:   make([]domain.SalePayment, len(req.Payments)),
	}
	for i, item := range req.Items {
		sale.Items[i] = domain.CartItem{
			SaleID:    sale.SaleID,
			Position:  i,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}
	for i, p := range req.Payments {
		sale.Payments[i] = domain.SalePayment{
			SaleID:   sale.SaleID,
			Position: i,
			Type:     p.Type,
			Amount:   p.Amount,
		}
	}

	var products *productLedger
	var customers *customerLedger
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx portsrepo.TxStore) error {
		var err error
		products, err = openProductLedger(ctx, tx, productIDs, actorID, now)
		if err != nil {
			return err
		}

		if err := tx.InsertSale(ctx, sale); err != nil {
			return fmt.Errorf("failed to insert sale: %w", err)
		}
		for _, item := range sale.Items {
			if err := tx.InsertCartItem(ctx, item); err != nil {
				return fmt.Errorf("failed to insert cart item %d: %w", item.Position, err)
			}
			if err := products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		for _, p := range sale.Payments {
			if err := tx.InsertSalePayment(ctx, p); err != nil {
				return fmt.Errorf("failed to insert sale payment %d: %w", p.Position, err)
			}
		}

		// Only the first debt payment is applied; later ones are recorded but not accrued.
		if debt := domain.FirstDebtPayment(sale.Payments); debt != nil && sale.CustomerID != nil {
			customers = newCustomerLedger(tx, actorID, now)
			if err := customers.AccrueDebt(ctx, *sale.CustomerID, debt.Amount); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.recordFailure(ctx, err, actorID)
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	sale.Seller = seller
	sale.Customer = customer
	if customers != nil {
		if c, ok := customers.Customer(*sale.CustomerID); ok {
			sale.Customer = &c
		}
	}
	for i := range sale.Items {
		if p, ok := products.Product(sale.Items[i].ProductID); ok {
			sale.Items[i].Product = &p
		}
	}

	metrics.SalesCreated.Inc()
	s.LogInfo(ctx, "Sale created",
		slog.String("sale_id", sale.SaleID),
		slog.String("seller_id", sale.SellerID),
		slog.Int("items", len(sale.Items)),
		slog.String("total", sale.Total.String()))
	return &sale, nil
}

// resolveProducts fails with apperrors.ErrNotFound naming the first unknown product.
func (s *saleService) resolveProducts(ctx context.Context, productIDs []string) error {
	found, err := s.productRepo.FindProductsByIDs(ctx, sortedUnique(productIDs))
	if err != nil {
		return fmt.Errorf("failed to resolve products: %w", err)
	}
	for _, id := range productIDs {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("product %s: %w", id, apperrors.ErrNotFound)
		}
	}
	return nil
}

func (s *saleService) recordFailure(ctx context.Context, err error, actorID string) {
	metrics.TransactionFailures.WithLabelValues("create_sale", metrics.ErrorKind(err)).Inc()
	if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrUnauthorized) {
		s.LogDebug(ctx, "Sale rejected", slog.String("error", err.Error()), slog.String("actor_id", actorID))
		return
	}
	s.LogError(ctx, err, "Failed to create sale", slog.String("actor_id", actorID))
}

// GetSaleByID retrieves a sale with seller, customer and products expanded.
func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get sale", slog.String("sale_id", saleID))
		}
		return nil, err
	}

	refs := newReferenceCache(s.employeeRepo, s.customerRepo)
	if err := refs.expandSale(ctx, sale); err != nil {
		return nil, err
	}

	productIDs := make([]string, len(sale.Items))
	for i, item := range sale.Items {
		productIDs[i] = item.ProductID
	}
	if len(productIDs) > 0 {
		products, err := s.productRepo.FindProductsByIDs(ctx, sortedUnique(productIDs))
		if err != nil {
			return nil, fmt.Errorf("failed to expand sale products: %w", err)
		}
		for i := range sale.Items {
			if p, ok := products[sale.Items[i].ProductID]; ok {
				sale.Items[i].Product = &p
			}
		}
	}
	return sale, nil
}

// ListSales retrieves a page of sales, newest first, with seller and customer expanded.
func (s *saleService) ListSales(ctx context.Context, params dto.ListTokenParams) ([]domain.Sale, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	sales, nextToken, err := s.saleRepo.ListSales(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales")
		return nil, nil, fmt.Errorf("failed to list sales: %w", err)
	}

	refs := newReferenceCache(s.employeeRepo, s.customerRepo)
	for i := range sales {
		if err := refs.expandSale(ctx, &sales[i]); err != nil {
			return nil, nil, err
		}
	}
	return sales, nextToken, nil
}
