package domain

// Unit is a unit of measure offered for products, e.g. "dona" or "kg". Product.Unit holds
// the unit name.
type Unit struct {
	UnitID string `json:"id"`
	Name   string `json:"name"`
	AuditFields
}
