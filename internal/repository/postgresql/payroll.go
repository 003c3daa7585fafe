package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/payroll"
	"github.com/worklane-hr/worklane-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// CreateLineItems implements payroll.PayrollRepository.
func (p *payrollRepository) CreateLineItems(ctx context.Context, items []payroll.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payroll_line_items (
			id, period_id, employee_id, company_id,
			hourly_rate, hours_worked, overtime_hours,
			basic_pay, overtime_amount, bonuses, gross_pay,
			social_insurance, health_insurance, housing_fund, withholding_tax,
			net_pay, flagged
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		)
	`

	for _, item := range items {
		_, err := q.Exec(ctx, query,
			item.ID,
			item.PeriodID,
			item.EmployeeID,
			item.CompanyID,
			item.HourlyRate,
			item.HoursWorked,
			item.OvertimeHours,
			item.BasicPay,
			item.OvertimeAmount,
			item.Bonuses,
			item.GrossPay,
			item.Deductions.SocialInsurance,
			item.Deductions.HealthInsurance,
			item.Deductions.HousingFund,
			item.Deductions.WithholdingTax,
			item.NetPay,
			item.Flagged,
		)
		if err != nil {
			return fmt.Errorf("failed to create line item for employee %s: %w", item.EmployeeID, err)
		}
	}

	return nil
}

// GetLineItemsByPeriod implements payroll.PayrollRepository.
func (p *payrollRepository) GetLineItemsByPeriod(ctx context.Context, periodID string, companyID string) ([]payroll.LineItem, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT li.id, li.period_id, li.employee_id, li.company_id,
			   li.hourly_rate, li.hours_worked, li.overtime_hours,
			   li.basic_pay, li.overtime_amount, li.bonuses, li.gross_pay,
			   li.social_insurance, li.health_insurance, li.housing_fund, li.withholding_tax,
			   li.net_pay, li.flagged, li.created_at, li.updated_at,
			   e.full_name, e.employee_code
		FROM payroll_line_items li
		JOIN employees e ON e.id = li.employee_id
		WHERE li.period_id = $1 AND li.company_id = $2
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, periodID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get line items: %w", err)
	}
	defer rows.Close()

	var items []payroll.LineItem
	for rows.Next() {
		var item payroll.LineItem
		err := rows.Scan(
			&item.ID, &item.PeriodID, &item.EmployeeID, &item.CompanyID,
			&item.HourlyRate, &item.HoursWorked, &item.OvertimeHours,
			&item.BasicPay, &item.OvertimeAmount, &item.Bonuses, &item.GrossPay,
			&item.Deductions.SocialInsurance, &item.Deductions.HealthInsurance,
			&item.Deductions.HousingFund, &item.Deductions.WithholdingTax,
			&item.NetPay, &item.Flagged, &item.CreatedAt, &item.UpdatedAt,
			&item.EmployeeName, &item.EmployeeCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate line items: %w", err)
	}

	return items, nil
}

// DeleteLineItemsByPeriod implements payroll.PayrollRepository.
func (p *payrollRepository) DeleteLineItemsByPeriod(ctx context.Context, periodID string, companyID string) error {
	q := GetQuerier(ctx, p.db)

	query := `DELETE FROM payroll_line_items WHERE period_id = $1 AND company_id = $2`

	if _, err := q.Exec(ctx, query, periodID, companyID); err != nil {
		return fmt.Errorf("failed to delete line items: %w", err)
	}

	return nil
}

// GetDeductionBreakdown implements payroll.PayrollRepository.
func (p *payrollRepository) GetDeductionBreakdown(ctx context.Context, employeeID string, periodID string, companyID string) (payroll.DeductionBreakdown, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT social_insurance, health_insurance, housing_fund, withholding_tax
		FROM employee_deductions
		WHERE employee_id = $1 AND period_id = $2 AND company_id = $3
	`

	var breakdown payroll.DeductionBreakdown
	err := q.QueryRow(ctx, query, employeeID, periodID, companyID).Scan(
		&breakdown.SocialInsurance,
		&breakdown.HealthInsurance,
		&breakdown.HousingFund,
		&breakdown.WithholdingTax,
	)

	if err != nil {
		// No configured deductions means a zero breakdown.
		if err == pgx.ErrNoRows {
			return payroll.DeductionBreakdown{}, nil
		}
		return payroll.DeductionBreakdown{}, fmt.Errorf("failed to get deduction breakdown: %w", err)
	}

	return breakdown, nil
}
