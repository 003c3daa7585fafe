package forecast

import (
	"context"
	"time"
)

// ReportRepository supplies the historical monthly series the forecaster
// extrapolates from.
type ReportRepository interface {
	// MonthlyPayrollTotals returns net payroll per month for the trailing
	// months window, oldest first. Labels are "Jan 2026" style.
	MonthlyPayrollTotals(ctx context.Context, companyID string, until time.Time, months int) ([]HistoryPoint, error)

	// MonthlyAttendanceHours returns approved attendance hours per month for
	// the trailing months window, oldest first.
	MonthlyAttendanceHours(ctx context.Context, companyID string, until time.Time, months int) ([]HistoryPoint, error)
}
