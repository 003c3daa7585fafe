package payroll

import (
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/payroll"
)

var (
	dailyRegularCap    = decimal.NewFromInt(8)
	overtimeMultiplier = decimal.RequireFromString("1.5")
)

// EmployeePayInput is everything the calculator needs for one employee:
// the rate and bonuses from the employee record, the approved daily hours
// from attendance, and the externally computed deduction breakdown.
type EmployeePayInput struct {
	EmployeeID string
	// HourlyRate is nil when the employee has no configured rate. The
	// calculator treats that as zero and logs a data-quality warning.
	HourlyRate *decimal.Decimal
	DailyHours []decimal.Decimal
	Bonuses    decimal.Decimal
	Deductions payroll.DeductionBreakdown
}

// Calculator aggregates attendance hours into pay. All arithmetic is decimal
// so period totals match the sum of their parts exactly.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// SplitDaily splits one day's hours at the 8-hour regular cap.
func (c *Calculator) SplitDaily(totalHours decimal.Decimal) (regular, overtime decimal.Decimal) {
	if totalHours.IsNegative() {
		return decimal.Zero, decimal.Zero
	}
	if totalHours.LessThanOrEqual(dailyRegularCap) {
		return totalHours, decimal.Zero
	}
	return dailyRegularCap, totalHours.Sub(dailyRegularCap)
}

// BuildLineItem computes one employee's line item for the period.
// A missing hourly rate zeroes the monetary fields but the item is still
// produced so period totals stay consistent.
func (c *Calculator) BuildLineItem(in EmployeePayInput) payroll.LineItem {
	// No approved attendance in the period: the employee still appears in the
	// run, as an unflagged all-zero row, so totals stay consistent.
	if len(in.DailyHours) == 0 {
		item := c.ZeroedLineItem(in.EmployeeID)
		item.Flagged = false
		return item
	}

	rate := decimal.Zero
	if in.HourlyRate != nil && !in.HourlyRate.IsNegative() {
		rate = *in.HourlyRate
	} else {
		slog.Warn("Payroll: missing or invalid hourly rate, defaulting to 0",
			"employee_id", in.EmployeeID)
	}

	hoursWorked := decimal.Zero
	overtimeHours := decimal.Zero
	for _, day := range in.DailyHours {
		regular, overtime := c.SplitDaily(day)
		hoursWorked = hoursWorked.Add(regular)
		overtimeHours = overtimeHours.Add(overtime)
	}

	bonuses := in.Bonuses
	if bonuses.IsNegative() {
		slog.Warn("Payroll: negative bonuses, defaulting to 0", "employee_id", in.EmployeeID)
		bonuses = decimal.Zero
	}

	basicPay := hoursWorked.Mul(rate)
	overtimeAmount := overtimeHours.Mul(rate).Mul(overtimeMultiplier)
	grossPay := basicPay.Add(overtimeAmount).Add(bonuses)

	// Net pay is floored at zero; deductions can exceed gross in a short
	// period but a line item never goes negative.
	netPay := grossPay.Sub(in.Deductions.Total())
	if netPay.IsNegative() {
		netPay = decimal.Zero
	}

	return payroll.LineItem{
		EmployeeID:     in.EmployeeID,
		HourlyRate:     rate,
		HoursWorked:    hoursWorked,
		OvertimeHours:  overtimeHours,
		BasicPay:       basicPay,
		OvertimeAmount: overtimeAmount,
		Bonuses:        bonuses,
		GrossPay:       grossPay,
		Deductions:     in.Deductions,
		NetPay:         netPay,
	}
}

// ZeroedLineItem returns a flagged, all-zero line item for an employee whose
// input was malformed. The employee stays visible in the run instead of
// silently disappearing from the totals.
func (c *Calculator) ZeroedLineItem(employeeID string) payroll.LineItem {
	return payroll.LineItem{
		EmployeeID:     employeeID,
		HourlyRate:     decimal.Zero,
		HoursWorked:    decimal.Zero,
		OvertimeHours:  decimal.Zero,
		BasicPay:       decimal.Zero,
		OvertimeAmount: decimal.Zero,
		Bonuses:        decimal.Zero,
		GrossPay:       decimal.Zero,
		NetPay:         decimal.Zero,
		Flagged:        true,
	}
}

// Totals sums line items element-wise. An empty slice yields a well-formed
// zero result.
func (c *Calculator) Totals(items []payroll.LineItem) payroll.PeriodTotals {
	totals := payroll.PeriodTotals{
		TotalHours:      decimal.Zero,
		TotalOvertime:   decimal.Zero,
		TotalGross:      decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNet:        decimal.Zero,
	}

	for _, item := range items {
		totals.TotalHours = totals.TotalHours.Add(item.HoursWorked)
		totals.TotalOvertime = totals.TotalOvertime.Add(item.OvertimeHours)
		totals.TotalGross = totals.TotalGross.Add(item.GrossPay)
		totals.TotalDeductions = totals.TotalDeductions.Add(item.Deductions.Total())
		totals.TotalNet = totals.TotalNet.Add(item.NetPay)
	}

	return totals
}
