package pgsql

import (
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:      newPgxProductRepository(dbPool),
		CustomerRepo:     newPgxCustomerRepository(dbPool),
		SupplierRepo:     newPgxSupplierRepository(dbPool),
		UnitRepo:         newPgxUnitRepository(dbPool),
		EmployeeRepo:     newPgxEmployeeRepository(dbPool),
		SaleRepo:         newPgxSaleRepository(dbPool),
		GoodsReceiptRepo: newPgxGoodsReceiptRepository(dbPool),
		UnitOfWork:       newPgxUnitOfWork(dbPool),
	}
}
