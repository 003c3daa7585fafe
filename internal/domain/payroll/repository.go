package payroll

import (
	"context"
)

// PayPeriodRepository defines data access for pay periods.
type PayPeriodRepository interface {
	CreatePeriod(ctx context.Context, period PayPeriod) (PayPeriod, error)
	GetPeriodByID(ctx context.Context, id string, companyID string) (PayPeriod, error)
	ListPeriods(ctx context.Context, companyID string, filter PeriodFilter) ([]PayPeriod, int64, error)
	UpdatePeriodStatus(ctx context.Context, id string, companyID string, status PeriodStatus) error
}

// PayrollRepository defines data access for payroll line items and the
// externally supplied deduction breakdowns.
type PayrollRepository interface {
	CreateLineItems(ctx context.Context, items []LineItem) error
	GetLineItemsByPeriod(ctx context.Context, periodID string, companyID string) ([]LineItem, error)
	DeleteLineItemsByPeriod(ctx context.Context, periodID string, companyID string) error

	// GetDeductionBreakdown returns the statutory deduction amounts for one
	// employee in one period, computed by an external system. A missing row
	// is a zero breakdown, not an error.
	GetDeductionBreakdown(ctx context.Context, employeeID string, periodID string, companyID string) (DeductionBreakdown, error)
}
