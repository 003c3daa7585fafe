package forecast

import (
	"context"
)

// ForecastService defines the trend projections surfaced on the dashboard.
// None of these return domain errors for thin data; an insufficient history
// degrades to an empty forecast.
type ForecastService interface {
	// GetPayrollTrend projects monthly net payroll totals
	GetPayrollTrend(ctx context.Context) (TrendResponse, error)

	// GetAttendanceTrend projects monthly attendance hours
	GetAttendanceTrend(ctx context.Context) (TrendResponse, error)

	// GetDashboard fetches both trends in parallel
	GetDashboard(ctx context.Context) (DashboardResponse, error)
}
