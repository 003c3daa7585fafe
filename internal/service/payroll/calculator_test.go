package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/payroll"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s = %s, want %s", msg, got, want)
}

func TestSplitDaily(t *testing.T) {
	calc := NewCalculator()

	cases := []struct {
		name         string
		hours        string
		wantRegular  string
		wantOvertime string
	}{
		{"under cap", "4", "4", "0"},
		{"exactly at cap", "8", "8", "0"},
		{"half hour over", "8.5", "8", "0.5"},
		{"double shift", "16", "8", "8"},
		{"zero", "0", "0", "0"},
		{"negative treated as zero", "-2", "0", "0"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			regular, overtime := calc.SplitDaily(dec(t, c.hours))
			assertDecimal(t, c.wantRegular, regular, "regular")
			assertDecimal(t, c.wantOvertime, overtime, "overtime")
		})
	}
}

func TestBuildLineItem(t *testing.T) {
	calc := NewCalculator()
	rate := dec(t, "100")

	item := calc.BuildLineItem(EmployeePayInput{
		EmployeeID: "emp-1",
		HourlyRate: &rate,
		DailyHours: []decimal.Decimal{dec(t, "8.5")},
		Bonuses:    decimal.Zero,
		Deductions: payroll.DeductionBreakdown{
			WithholdingTax: dec(t, "25"),
		},
	})

	assertDecimal(t, "8", item.HoursWorked, "hours worked")
	assertDecimal(t, "0.5", item.OvertimeHours, "overtime hours")
	assertDecimal(t, "800", item.BasicPay, "basic pay")
	assertDecimal(t, "75", item.OvertimeAmount, "overtime amount")
	assertDecimal(t, "875", item.GrossPay, "gross pay")
	assertDecimal(t, "850", item.NetPay, "net pay")
	assert.False(t, item.Flagged)
}

func TestBuildLineItemMultipleDays(t *testing.T) {
	calc := NewCalculator()
	rate := dec(t, "50")

	// Overtime splits per day, not over the period sum: 9 + 7 has one hour
	// of overtime even though the total is under two caps.
	item := calc.BuildLineItem(EmployeePayInput{
		EmployeeID: "emp-1",
		HourlyRate: &rate,
		DailyHours: []decimal.Decimal{dec(t, "9"), dec(t, "7")},
		Bonuses:    decimal.Zero,
	})

	assertDecimal(t, "15", item.HoursWorked, "hours worked")
	assertDecimal(t, "1", item.OvertimeHours, "overtime hours")
	assertDecimal(t, "750", item.BasicPay, "basic pay")
	assertDecimal(t, "75", item.OvertimeAmount, "overtime amount")
}

func TestBuildLineItemMissingRate(t *testing.T) {
	calc := NewCalculator()

	item := calc.BuildLineItem(EmployeePayInput{
		EmployeeID: "emp-1",
		HourlyRate: nil,
		DailyHours: []decimal.Decimal{dec(t, "8")},
		Bonuses:    dec(t, "100"),
	})

	// Hours still reported; only money derived from the rate goes to zero.
	assertDecimal(t, "8", item.HoursWorked, "hours worked")
	assertDecimal(t, "0", item.BasicPay, "basic pay")
	assertDecimal(t, "0", item.OvertimeAmount, "overtime amount")
	assertDecimal(t, "100", item.GrossPay, "gross pay")
}

func TestBuildLineItemNoApprovedAttendance(t *testing.T) {
	calc := NewCalculator()
	rate := dec(t, "100")

	item := calc.BuildLineItem(EmployeePayInput{
		EmployeeID: "emp-1",
		HourlyRate: &rate,
		Bonuses:    dec(t, "500"),
	})

	assert.False(t, item.Flagged)
	assertDecimal(t, "0", item.HoursWorked, "hours worked")
	assertDecimal(t, "0", item.GrossPay, "gross pay")
	assertDecimal(t, "0", item.NetPay, "net pay")
}

func TestBuildLineItemNegativeInputs(t *testing.T) {
	calc := NewCalculator()
	negativeRate := dec(t, "-10")

	item := calc.BuildLineItem(EmployeePayInput{
		EmployeeID: "emp-1",
		HourlyRate: &negativeRate,
		DailyHours: []decimal.Decimal{dec(t, "8")},
		Bonuses:    dec(t, "-50"),
	})

	assertDecimal(t, "0", item.HourlyRate, "hourly rate")
	assertDecimal(t, "0", item.Bonuses, "bonuses")
	assertDecimal(t, "0", item.GrossPay, "gross pay")
}

func TestBuildLineItemNetPayClampedAtZero(t *testing.T) {
	calc := NewCalculator()
	rate := dec(t, "10")

	item := calc.BuildLineItem(EmployeePayInput{
		EmployeeID: "emp-1",
		HourlyRate: &rate,
		DailyHours: []decimal.Decimal{dec(t, "2")},
		Deductions: payroll.DeductionBreakdown{
			SocialInsurance: dec(t, "100"),
		},
	})

	assertDecimal(t, "20", item.GrossPay, "gross pay")
	assertDecimal(t, "0", item.NetPay, "net pay")
}

func TestZeroedLineItemIsFlagged(t *testing.T) {
	calc := NewCalculator()

	item := calc.ZeroedLineItem("emp-1")

	assert.True(t, item.Flagged)
	assert.Equal(t, "emp-1", item.EmployeeID)
	assertDecimal(t, "0", item.GrossPay, "gross pay")
	assertDecimal(t, "0", item.NetPay, "net pay")
}

func TestTotals(t *testing.T) {
	calc := NewCalculator()
	rate := dec(t, "100")

	first := calc.BuildLineItem(EmployeePayInput{
		EmployeeID: "emp-1",
		HourlyRate: &rate,
		DailyHours: []decimal.Decimal{dec(t, "8.5")},
		Deductions: payroll.DeductionBreakdown{WithholdingTax: dec(t, "25")},
	})
	second := calc.BuildLineItem(EmployeePayInput{
		EmployeeID: "emp-2",
		HourlyRate: &rate,
		DailyHours: []decimal.Decimal{dec(t, "4")},
		Bonuses:    dec(t, "50"),
	})

	totals := calc.Totals([]payroll.LineItem{first, second})

	assertDecimal(t, "12", totals.TotalHours, "total hours")
	assertDecimal(t, "0.5", totals.TotalOvertime, "total overtime")
	assertDecimal(t, "1325", totals.TotalGross, "total gross")
	assertDecimal(t, "25", totals.TotalDeductions, "total deductions")
	assertDecimal(t, "1300", totals.TotalNet, "total net")
}

func TestTotalsEmpty(t *testing.T) {
	calc := NewCalculator()

	totals := calc.Totals(nil)

	assertDecimal(t, "0", totals.TotalHours, "total hours")
	assertDecimal(t, "0", totals.TotalGross, "total gross")
	assertDecimal(t, "0", totals.TotalNet, "total net")
}
