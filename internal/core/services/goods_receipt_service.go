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

type goodsReceiptService struct {
	BaseService
	receiptRepo  portsrepo.GoodsReceiptReader
	productRepo  portsrepo.ProductReader
	supplierRepo portsrepo.SupplierReader
	uow          portsrepo.UnitOfWork
}

// NewGoodsReceiptService creates a new goods receipt service.
func NewGoodsReceiptService(
	receiptRepo portsrepo.GoodsReceiptReader,
	productRepo portsrepo.ProductReader,
	supplierRepo portsrepo.SupplierReader,
	uow portsrepo.UnitOfWork,
	options ...ServiceOption,
) portssvc.GoodsReceiptSvcFacade {
	return &goodsReceiptService{
		BaseService:  newBaseService(options...),
		receiptRepo:  receiptRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		uow:          uow,
	}
}

var _ portssvc.GoodsReceiptSvcFacade = (*goodsReceiptService)(nil)

func validateGoodsReceiptRequest(req dto.CreateGoodsReceiptRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	for i, item := range req.Items {
		if err := requireNonNegative(fmt.Sprintf("items[%d].purchasePrice", i), item.PurchasePrice); err != nil {
			return err
		}
	}
	return requireNonNegative("totalAmount", req.TotalAmount)
}

// CreateGoodsReceipt records received goods. Each line raises the product's stock and
// overwrites its purchase price, so the last line wins when a product repeats.
func (s *goodsReceiptService) CreateGoodsReceipt(ctx context.Context, actorID string, req dto.CreateGoodsReceiptRequest) (*domain.GoodsReceipt, error) {
	if err := validateGoodsReceiptRequest(req); err != nil {
		s.recordFailure(ctx, err, actorID)
		return nil, err
	}

	supplier, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID)
	if err != nil {
		s.recordFailure(ctx, err, actorID)
		return nil, fmt.Errorf("failed to resolve supplier %s: %w", req.SupplierID, err)
	}

	productIDs := make([]string, len(req.Items))
	for i, item := range req.Items {
		productIDs[i] = item.ProductID
	}
	found, err := s.productRepo.FindProductsByIDs(ctx, sortedUnique(productIDs))
	if err != nil {
		s.recordFailure(ctx, err, actorID)
		return nil, fmt.Errorf("failed to resolve products: %w", err)
	}
	for _, id := range productIDs {
		if _, ok := found[id]; !ok {
			err := fmt.Errorf("product %s: %w", id, apperrors.ErrNotFound)
			s.recordFailure(ctx, err, actorID)
			return nil, err
		}
	}

	now := s.now()
	receipt := domain.GoodsReceipt{
		ReceiptID:   s.IDs.NewID(domain.GoodsReceiptIDPrefix),
		Date:        now,
		SupplierID:  supplier.SupplierID,
		DocNumber:   req.DocNumber,
		TotalAmount: req.TotalAmount,
		ReceivedBy:  actorID,
		Items:       make([]domain.GoodsReceiptItem, len(req.Items)),
	}
	for i, item := range req.Items {
		receipt.Items[i] = domain.GoodsReceiptItem{
			ReceiptID:     receipt.ReceiptID,
			Position:      i,
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			PurchasePrice: item.PurchasePrice,
		}
	}

	var products *productLedger
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx portsrepo.TxStore) error {
		var err error
		products, err = openProductLedger(ctx, tx, productIDs, actorID, now)
		if err != nil {
			return err
		}

		if err := tx.InsertGoodsReceipt(ctx, receipt); err != nil {
			return fmt.Errorf("failed to insert goods receipt: %w", err)
		}
		for _, item := range receipt.Items {
			if err := tx.InsertGoodsReceiptItem(ctx, item); err != nil {
				return fmt.Errorf("failed to insert goods receipt item %d: %w", item.Position, err)
			}
			if err := products.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
			if err := products.SetPurchasePrice(ctx, item.ProductID, item.PurchasePrice); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.recordFailure(ctx, err, actorID)
		return nil, fmt.Errorf("failed to create goods receipt: %w", err)
	}

	receipt.Supplier = supplier
	for i := range receipt.Items {
		if p, ok := products.Product(receipt.Items[i].ProductID); ok {
			receipt.Items[i].Product = &p
		}
	}

	metrics.GoodsReceiptsCreated.Inc()
	s.LogInfo(ctx, "Goods receipt created",
		slog.String("receipt_id", receipt.ReceiptID),
		slog.String("supplier_id", receipt.SupplierID),
		slog.Int("items", len(receipt.Items)))
	return &receipt, nil
}

func (s *goodsReceiptService) recordFailure(ctx context.Context, err error, actorID string) {
	metrics.TransactionFailures.WithLabelValues("create_goods_receipt", metrics.ErrorKind(err)).Inc()
	if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Goods receipt rejected", slog.String("error", err.Error()), slog.String("actor_id", actorID))
		return
	}
	s.LogError(ctx, err, "Failed to create goods receipt", slog.String("actor_id", actorID))
}

// GetGoodsReceiptByID retrieves a receipt with supplier and products expanded.
func (s *goodsReceiptService) GetGoodsReceiptByID(ctx context.Context, receiptID string) (*domain.GoodsReceipt, error) {
	receipt, err := s.receiptRepo.FindGoodsReceiptByID(ctx, receiptID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get goods receipt", slog.String("receipt_id", receiptID))
		}
		return nil, err
	}

	refs := newReferenceCache(nil, nil).withSuppliers(s.supplierRepo)
	if err := refs.expandGoodsReceipt(ctx, receipt); err != nil {
		return nil, err
	}

	productIDs := make([]string, len(receipt.Items))
	for i, item := range receipt.Items {
		productIDs[i] = item.ProductID
	}
	if len(productIDs) > 0 {
		products, err := s.productRepo.FindProductsByIDs(ctx, sortedUnique(productIDs))
		if err != nil {
			return nil, fmt.Errorf("failed to expand goods receipt products: %w", err)
		}
		for i := range receipt.Items {
			if p, ok := products[receipt.Items[i].ProductID]; ok {
				receipt.Items[i].Product = &p
			}
		}
	}
	return receipt, nil
}

// ListGoodsReceipts retrieves a page of receipts, newest first, with suppliers expanded.
func (s *goodsReceiptService) ListGoodsReceipts(ctx context.Context, params dto.ListTokenParams) ([]domain.GoodsReceipt, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	receipts, nextToken, err := s.receiptRepo.ListGoodsReceipts(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goods receipts")
		return nil, nil, fmt.Errorf("failed to list goods receipts: %w", err)
	}

	refs := newReferenceCache(nil, nil).withSuppliers(s.supplierRepo)
	for i := range receipts {
		if err := refs.expandGoodsReceipt(ctx, &receipts[i]); err != nil {
			return nil, nil, err
		}
	}
	return receipts, nextToken, nil
}
