package domain

// EmployeeRole is the coarse permission level of an employee.
type EmployeeRole string

const (
	RoleAdmin   EmployeeRole = "ADMIN"
	RoleCashier EmployeeRole = "CASHIER"
)

// Employee is a store employee. Employees act as sellers on sales.
type Employee struct {
	EmployeeID string       `json:"id"`
	Name       string       `json:"name"`
	Phone      string       `json:"phone"`
	Role       EmployeeRole `json:"role"`
	PinHash    string       `json:"-"`
	AuditFields
}
