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

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	uow          portsrepo.UnitOfWork
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, uow portsrepo.UnitOfWork, options ...ServiceOption) portssvc.CustomerSvcFacade {
	return &customerService{
		BaseService:  newBaseService(options...),
		customerRepo: customerRepo,
		uow:          uow,
	}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, actorID string, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := requireNonNegative("debt", req.Debt); err != nil {
		return nil, err
	}
	customer := domain.Customer{
		CustomerID:  s.IDs.NewID(domain.CustomerIDPrefix),
		Name:        req.Name,
		Phone:       req.Phone,
		Debt:        req.Debt,
		AuditFields: auditFields(actorID, s.now()),
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get customer", slog.String("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, params dto.ListParams) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// RecordDebtPayment settles part of a customer's debt. The payment row and the debt
// decrease commit together.
func (s *customerService) RecordDebtPayment(ctx context.Context, actorID string, customerID string, req dto.CreateDebtPaymentRequest) (*domain.DebtPayment, *domain.Customer, error) {
	if err := validateRequest(req); err != nil {
		return nil, nil, err
	}
	if err := requirePositive("amount", req.Amount); err != nil {
		return nil, nil, err
	}
	if req.PaymentType == domain.PaymentDebt {
		return nil, nil, fmt.Errorf("%w: debt cannot be repaid with %q", apperrors.ErrValidation, domain.PaymentDebt)
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, nil, err
	}

	now := s.now()
	payment := domain.DebtPayment{
		DebtPaymentID: s.IDs.NewID(domain.DebtPaymentIDPrefix),
		CustomerID:    customerID,
		Amount:        req.Amount,
		PaymentType:   req.PaymentType,
		Date:          now,
		ReceivedBy:    actorID,
	}

	var customers *customerLedger
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx portsrepo.TxStore) error {
		customers = newCustomerLedger(tx, actorID, now)
		if err := customers.SettleDebt(ctx, customerID, payment.Amount); err != nil {
			return err
		}
		if err := tx.InsertDebtPayment(ctx, payment); err != nil {
			return fmt.Errorf("failed to insert debt payment: %w", err)
		}
		return nil
	})
	if err != nil {
		metrics.TransactionFailures.WithLabelValues("record_debt_payment", metrics.ErrorKind(err)).Inc()
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to record debt payment", slog.String("customer_id", customerID))
		}
		return nil, nil, fmt.Errorf("failed to record debt payment: %w", err)
	}

	customer, ok := customers.Customer(customerID)
	if !ok {
		err := fmt.Errorf("customer %s missing from ledger after settling debt", customerID)
		s.LogError(ctx, err, "Debt payment committed without customer state", slog.String("debt_payment_id", payment.DebtPaymentID))
		return nil, nil, err
	}
	metrics.DebtPaymentsCreated.Inc()
	s.LogInfo(ctx, "Debt payment recorded",
		slog.String("debt_payment_id", payment.DebtPaymentID),
		slog.String("customer_id", customerID),
		slog.String("amount", payment.Amount.String()),
		slog.String("debt_after", customer.Debt.String()))
	return &payment, &customer, nil
}
