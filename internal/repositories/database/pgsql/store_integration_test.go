package pgsql_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/core/services"
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/SscSPs/pos_backend/internal/platform/config"
	"github.com/SscSPs/pos_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/pos_backend/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// PgStoreTestSuite runs the services against a real Postgres. It needs PGSQL_URL pointing at a
// disposable database: every test truncates all tables.
type PgStoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	pool  *pgxpool.Pool
	repos portsrepo.RepositoryProvider
	svc   *portssvc.ServiceContainer
	admin *domain.Employee
	ticks atomic.Int64
}

func TestPgStoreTestSuite(t *testing.T) {
	url := os.Getenv("PGSQL_URL")
	if url == "" {
		t.Skip("PGSQL_URL not set")
	}
	if err := database.RunMigrations(url); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	pool, err := database.NewPgxPool(context.Background(), url, true)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer database.ClosePgxPool(pool)

	suite.Run(t, &PgStoreTestSuite{pool: pool})
}

func (s *PgStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	_, err := s.pool.Exec(s.ctx, `TRUNCATE debt_payments, goods_receipt_items, goods_receipts,
		sale_payments, cart_items, sales, suppliers, customers, products, units, employees CASCADE`)
	s.Require().NoError(err)

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s.ticks.Store(0)
	clock := func() time.Time {
		return start.Add(time.Duration(s.ticks.Add(1)) * time.Second)
	}

	s.repos = pgsql.NewRepositoryProvider(s.pool)
	s.svc = services.NewServiceContainer(&config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "pos-test",
	}, s.repos, services.WithClock(clock))

	admin, err := s.svc.Employee.EnsureBootstrapAdmin(s.ctx, "Admin", "+998900000000", "1234")
	s.Require().NoError(err)
	s.Require().NotNil(admin)
	s.admin = admin
}

func (s *PgStoreTestSuite) createProduct(name string, stock int64) *domain.Product {
	p, err := s.svc.Product.CreateProduct(s.ctx, s.admin.EmployeeID, dto.CreateProductRequest{
		Name:          name,
		SalePrice:     decimal.NewFromInt(2),
		PurchasePrice: decimal.NewFromInt(1),
		Stock:         stock,
	})
	s.Require().NoError(err)
	return p
}

func (s *PgStoreTestSuite) TestConcurrentSalesDoNotLoseUpdates() {
	product := s.createProduct("Gum", 50)
	customer, err := s.svc.Customer.CreateCustomer(s.ctx, s.admin.EmployeeID, dto.CreateCustomerRequest{Name: "Regular"})
	s.Require().NoError(err)

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.svc.Sale.CreateSale(s.ctx, s.admin.EmployeeID, dto.CreateSaleRequest{
				Items:      []dto.CartItemRequest{{ProductID: product.ProductID, Quantity: 1, Price: decimal.NewFromInt(2)}},
				Subtotal:   decimal.NewFromInt(2),
				Total:      decimal.NewFromInt(2),
				Payments:   []dto.SalePaymentRequest{{Type: domain.PaymentDebt, Amount: decimal.NewFromInt(2)}},
				CustomerID: &customer.CustomerID,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.NoError(err)
	}

	stored, err := s.repos.ProductRepo.FindProductByID(s.ctx, product.ProductID)
	s.Require().NoError(err)
	s.Equal(int64(50-workers), stored.Stock)

	c, err := s.repos.CustomerRepo.FindCustomerByID(s.ctx, customer.CustomerID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(2*workers).Equal(c.Debt), "debt %s", c.Debt)
}

func (s *PgStoreTestSuite) TestLockReportsMissingProducts() {
	p := s.createProduct("Salt", 1)

	err := s.repos.UnitOfWork.WithinTx(s.ctx, func(ctx context.Context, tx portsrepo.TxStore) error {
		_, err := tx.FindProductsByIDsForUpdate(ctx, []string{p.ProductID, "prod_gone"})
		return err
	})
	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrNotFound))
	s.Contains(err.Error(), "prod_gone")
}

func (s *PgStoreTestSuite) TestListSales_Pagination() {
	p := s.createProduct("Water", 100)
	ids := make([]string, 3)
	for i := range ids {
		sale, err := s.svc.Sale.CreateSale(s.ctx, s.admin.EmployeeID, dto.CreateSaleRequest{
			Items:    []dto.CartItemRequest{{ProductID: p.ProductID, Quantity: 1, Price: decimal.NewFromInt(10)}},
			Subtotal: decimal.NewFromInt(10),
			Total:    decimal.NewFromInt(10),
			Payments: []dto.SalePaymentRequest{{Type: domain.PaymentCard, Amount: decimal.NewFromInt(10)}},
		})
		s.Require().NoError(err)
		ids[i] = sale.SaleID
	}

	first, next, err := s.svc.Sale.ListSales(s.ctx, dto.ListTokenParams{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(first, 2)
	s.Require().NotNil(next)
	s.Equal(ids[2], first[0].SaleID)
	s.Equal(ids[1], first[1].SaleID)

	second, next, err := s.svc.Sale.ListSales(s.ctx, dto.ListTokenParams{Limit: 2, NextToken: next})
	s.Require().NoError(err)
	s.Require().Len(second, 1)
	s.Nil(next)
	s.Equal(ids[0], second[0].SaleID)
}

func (s *PgStoreTestSuite) TestDuplicatesMapToErrDuplicate() {
	_, err := s.svc.Employee.CreateEmployee(s.ctx, s.admin.EmployeeID, dto.CreateEmployeeRequest{
		Name: "Clone", Phone: s.admin.Phone, Role: domain.RoleCashier, Pin: "1111",
	})
	s.True(errors.Is(err, apperrors.ErrDuplicate), "got %v", err)

	_, err = s.svc.Unit.CreateUnit(s.ctx, s.admin.EmployeeID, dto.CreateUnitRequest{Name: "kg"})
	s.Require().NoError(err)
	_, err = s.svc.Unit.CreateUnit(s.ctx, s.admin.EmployeeID, dto.CreateUnitRequest{Name: "kg"})
	s.True(errors.Is(err, apperrors.ErrDuplicate), "got %v", err)
}

func (s *PgStoreTestSuite) TestUpdateEmployee_NewPinReplacesOld() {
	cashier, err := s.svc.Employee.CreateEmployee(s.ctx, s.admin.EmployeeID, dto.CreateEmployeeRequest{
		Name: "Dilnoza", Phone: "+998901234567", Role: domain.RoleCashier, Pin: "1111",
	})
	s.Require().NoError(err)

	pin := "2222"
	_, err = s.svc.Employee.UpdateEmployee(s.ctx, s.admin.EmployeeID, cashier.EmployeeID, dto.UpdateEmployeeRequest{Pin: &pin})
	s.Require().NoError(err)

	_, err = s.svc.Auth.Login(s.ctx, dto.LoginRequest{Phone: cashier.Phone, Pin: "1111"})
	s.True(errors.Is(err, apperrors.ErrUnauthorized))
	_, err = s.svc.Auth.Login(s.ctx, dto.LoginRequest{Phone: cashier.Phone, Pin: "2222"})
	s.NoError(err)
}
