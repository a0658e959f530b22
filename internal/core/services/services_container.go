package services

import (
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Employee = NewEmployeeService(repos.EmployeeRepo, options...)
	container.Product = NewProductService(repos.ProductRepo, options...)
	container.Supplier = NewSupplierService(repos.SupplierRepo, options...)
	container.Unit = NewUnitService(repos.UnitRepo, options...)
	container.Customer = NewCustomerService(repos.CustomerRepo, repos.UnitOfWork, options...)

	container.Sale = NewSaleService(
		repos.SaleRepo,
		repos.ProductRepo,
		repos.CustomerRepo,
		repos.EmployeeRepo,
		repos.UnitOfWork,
		options...,
	)
	container.GoodsReceipt = NewGoodsReceiptService(
		repos.GoodsReceiptRepo,
		repos.ProductRepo,
		repos.SupplierRepo,
		repos.UnitOfWork,
		options...,
	)

	container.Auth = NewAuthService(container.Employee, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer, options...)

	return container
}
