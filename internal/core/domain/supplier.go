package domain

// Supplier delivers goods to the store.
type Supplier struct {
	SupplierID string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	AuditFields
}
