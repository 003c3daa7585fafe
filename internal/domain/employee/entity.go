package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	CompanyID    string
	FullName     string
	EmployeeCode string
	// HourlyRate is nullable: employees without a configured rate still get a
	// zeroed payroll line item rather than being dropped from the run.
	HourlyRate *decimal.Decimal
	Bonuses    decimal.Decimal
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
