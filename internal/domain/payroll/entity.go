package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStatus enum
type PeriodStatus string

const (
	PeriodStatusOpen       PeriodStatus = "open"
	PeriodStatusProcessing PeriodStatus = "processing"
	PeriodStatusClosed     PeriodStatus = "closed"
)

// PayPeriod - a fixed date range for which one payroll run is produced.
// Invariant: StartDate <= EndDate <= PayDate.
type PayPeriod struct {
	ID        string
	CompanyID string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	PayDate   time.Time
	Status    PeriodStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeductionBreakdown is the fixed set of itemized deductions. Modeled as
// named fields rather than an open map so the "sum of items" invariant is
// statically checkable.
type DeductionBreakdown struct {
	SocialInsurance decimal.Decimal `json:"social_insurance"`
	HealthInsurance decimal.Decimal `json:"health_insurance"`
	HousingFund     decimal.Decimal `json:"housing_fund"`
	WithholdingTax  decimal.Decimal `json:"withholding_tax"`
}

// Total sums the itemized components. The statutory amounts themselves are
// supplied by an external system; this engine only aggregates them.
func (d DeductionBreakdown) Total() decimal.Decimal {
	return d.SocialInsurance.Add(d.HealthInsurance).Add(d.HousingFund).Add(d.WithholdingTax)
}

// LineItem - one employee's pay for one period. All monetary and hour fields
// are decimal so repeated aggregation does not drift.
type LineItem struct {
	ID             string
	PeriodID       string
	EmployeeID     string
	CompanyID      string
	HourlyRate     decimal.Decimal
	HoursWorked    decimal.Decimal
	OvertimeHours  decimal.Decimal
	BasicPay       decimal.Decimal
	OvertimeAmount decimal.Decimal
	Bonuses        decimal.Decimal
	GrossPay       decimal.Decimal
	Deductions     DeductionBreakdown
	NetPay         decimal.Decimal
	// Flagged is set when the employee's input data was malformed and the
	// line item was zeroed instead of aborting the whole run.
	Flagged   bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// PeriodTotals - element-wise sums of line items across all employees.
type PeriodTotals struct {
	TotalHours      decimal.Decimal
	TotalOvertime   decimal.Decimal
	TotalGross      decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal
}
