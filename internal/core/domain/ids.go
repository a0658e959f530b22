package domain

// Identifier prefixes, one per entity kind.
const (
	EmployeeIDPrefix     = "emp"
	ProductIDPrefix      = "prod"
	CustomerIDPrefix     = "cust"
	SupplierIDPrefix     = "sup"
	UnitIDPrefix         = "unit"
	SaleIDPrefix         = "sale"
	GoodsReceiptIDPrefix = "rcpt"
	DebtPaymentIDPrefix  = "dpay"
)
