package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane-hr/worklane-backend-go/internal/pkg/validator"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func TestCreatePeriodRequestValidate(t *testing.T) {
	valid := CreatePeriodRequest{
		Name:      "March 2026",
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
		PayDate:   "2026-04-05",
	}
	assert.NoError(t, valid.Validate())
}

func TestCreatePeriodRequestDateOrder(t *testing.T) {
	cases := []struct {
		name      string
		req       CreatePeriodRequest
		wantField string
	}{
		{
			"end before start",
			CreatePeriodRequest{Name: "x", StartDate: "2026-03-31", EndDate: "2026-03-01", PayDate: "2026-04-05"},
			"end_date",
		},
		{
			"pay before end",
			CreatePeriodRequest{Name: "x", StartDate: "2026-03-01", EndDate: "2026-03-31", PayDate: "2026-03-15"},
			"pay_date",
		},
		{
			"missing name",
			CreatePeriodRequest{StartDate: "2026-03-01", EndDate: "2026-03-31", PayDate: "2026-04-05"},
			"name",
		},
		{
			"malformed start date",
			CreatePeriodRequest{Name: "x", StartDate: "03/01/2026", EndDate: "2026-03-31", PayDate: "2026-04-05"},
			"start_date",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.wantField)
		})
	}
}

func TestRunPayrollRequestValidate(t *testing.T) {
	req := RunPayrollRequest{PeriodID: "period-1"}
	assert.NoError(t, req.Validate())

	empty := RunPayrollRequest{}
	assert.Error(t, empty.Validate())
}

func TestDeductionBreakdownTotal(t *testing.T) {
	breakdown := DeductionBreakdown{
		SocialInsurance: dec(t, "100"),
		HealthInsurance: dec(t, "50"),
		HousingFund:     dec(t, "25"),
		WithholdingTax:  dec(t, "125.50"),
	}
	assert.True(t, breakdown.Total().Equal(dec(t, "300.50")))

	var zero DeductionBreakdown
	assert.True(t, zero.Total().IsZero())
}
