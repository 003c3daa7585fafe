package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/worklane-hr/worklane-backend-go/internal/pkg/validator"
)

// ========== PERIOD DTOs ==========

type CreatePeriodRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	PayDate   string `json:"pay_date"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
	}
	pay, payOK := validator.IsValidDate(r.PayDate)
	if !payOK {
		errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must be in YYYY-MM-DD format"})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if endOK && payOK && pay.Before(end) {
		errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must not be before end_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	PayDate   string `json:"pay_date"`
	Status    string `json:"status"`
}

type PeriodFilter struct {
	Status *string `json:"status,omitempty"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

type ListPeriodResponse struct {
	Data       []PeriodResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

// ========== RUN DTOs ==========

type RunPayrollRequest struct {
	PeriodID string `json:"-"`
	// Empty = all active employees
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PeriodID) {
		errs = append(errs, validator.ValidationError{Field: "period_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LineItemResponse struct {
	ID             string             `json:"id"`
	PeriodID       string             `json:"period_id"`
	EmployeeID     string             `json:"employee_id"`
	EmployeeName   string             `json:"employee_name"`
	EmployeeCode   string             `json:"employee_code"`
	HourlyRate     decimal.Decimal    `json:"hourly_rate"`
	HoursWorked    decimal.Decimal    `json:"hours_worked"`
	OvertimeHours  decimal.Decimal    `json:"overtime_hours"`
	BasicPay       decimal.Decimal    `json:"basic_pay"`
	OvertimeAmount decimal.Decimal    `json:"overtime_amount"`
	Bonuses        decimal.Decimal    `json:"bonuses"`
	GrossPay       decimal.Decimal    `json:"gross_pay"`
	Deductions     DeductionBreakdown `json:"deductions"`
	TotalDeduction decimal.Decimal    `json:"total_deduction"`
	NetPay         decimal.Decimal    `json:"net_pay"`
	Flagged        bool               `json:"flagged,omitempty"`
}

type TotalsResponse struct {
	TotalHours      decimal.Decimal `json:"total_hours"`
	TotalOvertime   decimal.Decimal `json:"total_overtime"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
}

type RunPayrollResponse struct {
	Period PeriodResponse     `json:"period"`
	Items  []LineItemResponse `json:"items"`
	Totals TotalsResponse     `json:"totals"`
}

type PeriodSummaryResponse struct {
	Period        PeriodResponse     `json:"period"`
	EmployeeCount int                `json:"employee_count"`
	Items         []LineItemResponse `json:"items"`
	Totals        TotalsResponse     `json:"totals"`
}
