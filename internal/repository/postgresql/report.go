package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/worklane-hr/worklane-backend-go/internal/domain/forecast"
	"github.com/worklane-hr/worklane-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) forecast.ReportRepository {
	return &reportRepository{db: db}
}

// MonthlyPayrollTotals implements forecast.ReportRepository.
func (r *reportRepository) MonthlyPayrollTotals(ctx context.Context, companyID string, until time.Time, months int) ([]forecast.HistoryPoint, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date_trunc('month', pp.pay_date) AS month,
			   COALESCE(SUM(li.net_pay), 0) AS total
		FROM payroll_line_items li
		JOIN pay_periods pp ON pp.id = li.period_id
		WHERE li.company_id = $1
		  AND pp.pay_date >= $2
		  AND pp.pay_date <= $3
		GROUP BY 1
		ORDER BY 1 ASC
	`

	from := monthStart(until).AddDate(0, -(months - 1), 0)

	rows, err := q.Query(ctx, query, companyID, from, until)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly payroll totals: %w", err)
	}
	defer rows.Close()

	byMonth := make(map[time.Time]float64, months)
	for rows.Next() {
		var month time.Time
		var total float64
		if err := rows.Scan(&month, &total); err != nil {
			return nil, fmt.Errorf("failed to scan payroll total: %w", err)
		}
		byMonth[monthStart(month)] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll totals: %w", err)
	}

	return fillMonthlySeries(byMonth, from, months), nil
}

// MonthlyAttendanceHours implements forecast.ReportRepository.
func (r *reportRepository) MonthlyAttendanceHours(ctx context.Context, companyID string, until time.Time, months int) ([]forecast.HistoryPoint, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date_trunc('month', a.date) AS month,
			   COALESCE(SUM(a.total_hours), 0) AS total
		FROM attendances a
		WHERE a.company_id = $1
		  AND a.status = 'approved'
		  AND a.date >= $2
		  AND a.date <= $3
		GROUP BY 1
		ORDER BY 1 ASC
	`

	from := monthStart(until).AddDate(0, -(months - 1), 0)

	rows, err := q.Query(ctx, query, companyID, from, until)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly attendance hours: %w", err)
	}
	defer rows.Close()

	byMonth := make(map[time.Time]float64, months)
	for rows.Next() {
		var month time.Time
		var total float64
		if err := rows.Scan(&month, &total); err != nil {
			return nil, fmt.Errorf("failed to scan attendance total: %w", err)
		}
		byMonth[monthStart(month)] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance totals: %w", err)
	}

	return fillMonthlySeries(byMonth, from, months), nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// fillMonthlySeries expands the sparse month->value map into a dense,
// chronological series. Months with no rows become zero points so the trend
// fit sees a complete window. No rows at all means no history: the series
// stays empty so the thin-history guard downstream can refuse to project.
func fillMonthlySeries(byMonth map[time.Time]float64, from time.Time, months int) []forecast.HistoryPoint {
	if len(byMonth) == 0 {
		return nil
	}

	points := make([]forecast.HistoryPoint, 0, months)
	for i := 0; i < months; i++ {
		month := from.AddDate(0, i, 0)
		points = append(points, forecast.HistoryPoint{
			Label: month.Format("Jan 2006"),
			Value: byMonth[month],
		})
	}
	return points
}
