package payroll

import (
	"context"
)

// PayrollService defines business logic for payroll operations
type PayrollService interface {
	// CreatePeriod creates a new open pay period
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)

	// GetPeriod retrieves a pay period by ID
	GetPeriod(ctx context.Context, id string) (PeriodResponse, error)

	// ListPeriods retrieves pay periods with pagination
	ListPeriods(ctx context.Context, filter PeriodFilter) (ListPeriodResponse, error)

	// RunPayroll aggregates approved attendance into line items and totals
	RunPayroll(ctx context.Context, req RunPayrollRequest) (RunPayrollResponse, error)

	// ClosePeriod marks a period closed; no further runs are accepted
	ClosePeriod(ctx context.Context, id string) (PeriodResponse, error)

	// GetPeriodSummary returns the stored line items plus totals
	GetPeriodSummary(ctx context.Context, id string) (PeriodSummaryResponse, error)
}
