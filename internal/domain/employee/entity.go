package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the read-only directory record supplied by the employee
// master. The attendance console never creates, edits or deactivates
// employees; it only scopes them by department.
type Employee struct {
	ID          string
	Name        string
	Department  string
	Designation string
	Email       string
	PhoneNumber string
	HireDate    time.Time
	BaseSalary  decimal.Decimal
}
