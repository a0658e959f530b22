package sqlite

import (
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/jmoiron/sqlx"
)

// NewRepositoryProvider wires the SQLite repositories. db must be limited to one open
// connection; the unit of work relies on it to serialize writers.
func NewRepositoryProvider(db *sqlx.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:      newSQLiteProductRepository(db),
		CustomerRepo:     newSQLiteCustomerRepository(db),
		SupplierRepo:     newSQLiteSupplierRepository(db),
		UnitRepo:         newSQLiteUnitRepository(db),
		EmployeeRepo:     newSQLiteEmployeeRepository(db),
		SaleRepo:         newSQLiteSaleRepository(db),
		GoodsReceiptRepo: newSQLiteGoodsReceiptRepository(db),
		UnitOfWork:       newSQLiteUnitOfWork(db),
	}
}
