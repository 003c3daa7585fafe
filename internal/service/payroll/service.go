package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/attendance"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/employee"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/payroll"
	"github.com/worklane-hr/worklane-backend-go/internal/pkg/database"
	"github.com/worklane-hr/worklane-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db             *database.DB
	periodRepo     payroll.PayPeriodRepository
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	calculator     *Calculator
}

func NewPayrollService(
	db *database.DB,
	periodRepo payroll.PayPeriodRepository,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		periodRepo:     periodRepo,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		calculator:     NewCalculator(),
	}
}

// Helper to get company_id from JWT context
func getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// ========== PERIODS ==========

func (s *PayrollServiceImpl) CreatePeriod(ctx context.Context, req payroll.CreatePeriodRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	pay, _ := time.Parse("2006-01-02", req.PayDate)

	period := payroll.PayPeriod{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		PayDate:   pay,
		Status:    payroll.PeriodStatusOpen,
	}

	created, err := s.periodRepo.CreatePeriod(ctx, period)
	if err != nil {
		return payroll.PeriodResponse{}, fmt.Errorf("failed to create pay period: %w", err)
	}

	return mapPeriodToResponse(created), nil
}

func (s *PayrollServiceImpl) GetPeriod(ctx context.Context, id string) (payroll.PeriodResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	period, err := s.periodRepo.GetPeriodByID(ctx, id, companyID)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return mapPeriodToResponse(period), nil
}

func (s *PayrollServiceImpl) ListPeriods(ctx context.Context, filter payroll.PeriodFilter) (payroll.ListPeriodResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.ListPeriodResponse{}, err
	}

	periods, total, err := s.periodRepo.ListPeriods(ctx, companyID, filter)
	if err != nil {
		return payroll.ListPeriodResponse{}, fmt.Errorf("failed to list pay periods: %w", err)
	}

	responses := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, mapPeriodToResponse(p))
	}

	return payroll.ListPeriodResponse{
		Data:       responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) ClosePeriod(ctx context.Context, id string) (payroll.PeriodResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	period, err := s.periodRepo.GetPeriodByID(ctx, id, companyID)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	if period.Status == payroll.PeriodStatusClosed {
		return payroll.PeriodResponse{}, payroll.ErrPeriodAlreadyClosed
	}

	if err := s.periodRepo.UpdatePeriodStatus(ctx, id, companyID, payroll.PeriodStatusClosed); err != nil {
		return payroll.PeriodResponse{}, fmt.Errorf("failed to close pay period: %w", err)
	}

	period.Status = payroll.PeriodStatusClosed
	return mapPeriodToResponse(period), nil
}

// ========== PAYROLL RUN ==========

func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunPayrollResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.RunPayrollResponse{}, err
	}

	period, err := s.periodRepo.GetPeriodByID(ctx, req.PeriodID, companyID)
	if err != nil {
		return payroll.RunPayrollResponse{}, err
	}

	if period.Status == payroll.PeriodStatusClosed {
		return payroll.RunPayrollResponse{}, payroll.ErrPeriodNotOpen
	}

	// Resolve the employee set for this run. An explicit employee list must
	// resolve entirely, an unknown ID fails the run before anything is written.
	var employees []employee.Employee
	if len(req.EmployeeIDs) > 0 {
		employees = make([]employee.Employee, 0, len(req.EmployeeIDs))
		for _, id := range req.EmployeeIDs {
			emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
			if err != nil {
				return payroll.RunPayrollResponse{}, err
			}
			employees = append(employees, emp)
		}
	} else {
		employees, err = s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
		if err != nil {
			return payroll.RunPayrollResponse{}, fmt.Errorf("failed to get employees: %w", err)
		}
	}

	// One line item per employee. A bad record zeroes that employee and the
	// run keeps going; it never aborts the whole period.
	items := make([]payroll.LineItem, 0, len(employees))
	for _, emp := range employees {
		item := s.buildEmployeeLineItem(ctx, emp, period, companyID)
		item.ID = uuid.NewString()
		item.PeriodID = period.ID
		item.CompanyID = companyID
		name := emp.FullName
		code := emp.EmployeeCode
		item.EmployeeName = &name
		item.EmployeeCode = &code
		items = append(items, item)
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Re-running an open period replaces the previous draft items.
		if err := s.payrollRepo.DeleteLineItemsByPeriod(txCtx, period.ID, companyID); err != nil {
			return fmt.Errorf("failed to clear previous line items: %w", err)
		}
		if err := s.payrollRepo.CreateLineItems(txCtx, items); err != nil {
			return fmt.Errorf("failed to create line items: %w", err)
		}
		if err := s.periodRepo.UpdatePeriodStatus(txCtx, period.ID, companyID, payroll.PeriodStatusProcessing); err != nil {
			return fmt.Errorf("failed to update period status: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.RunPayrollResponse{}, err
	}

	period.Status = payroll.PeriodStatusProcessing

	return payroll.RunPayrollResponse{
		Period: mapPeriodToResponse(period),
		Items:  mapToLineItemResponses(items),
		Totals: mapTotalsToResponse(s.calculator.Totals(items)),
	}, nil
}

// buildEmployeeLineItem gathers one employee's pay inputs and runs the
// calculator. Any repository failure degrades to a flagged zero item.
func (s *PayrollServiceImpl) buildEmployeeLineItem(ctx context.Context, emp employee.Employee, period payroll.PayPeriod, companyID string) payroll.LineItem {
	records, err := s.attendanceRepo.GetApprovedInRange(ctx, emp.ID, period.StartDate, period.EndDate, companyID)
	if err != nil {
		slog.Warn("Payroll: failed to load attendance, zeroing line item",
			"employee_id", emp.ID, "period_id", period.ID, "error", err)
		return s.calculator.ZeroedLineItem(emp.ID)
	}

	dailyHours := make([]decimal.Decimal, 0, len(records))
	for _, rec := range records {
		if rec.TotalHours == nil {
			continue
		}
		dailyHours = append(dailyHours, *rec.TotalHours)
	}

	deductions, err := s.payrollRepo.GetDeductionBreakdown(ctx, emp.ID, period.ID, companyID)
	if err != nil {
		slog.Warn("Payroll: failed to load deductions, zeroing line item",
			"employee_id", emp.ID, "period_id", period.ID, "error", err)
		return s.calculator.ZeroedLineItem(emp.ID)
	}

	return s.calculator.BuildLineItem(EmployeePayInput{
		EmployeeID: emp.ID,
		HourlyRate: emp.HourlyRate,
		DailyHours: dailyHours,
		Bonuses:    emp.Bonuses,
		Deductions: deductions,
	})
}

// ========== SUMMARY ==========

func (s *PayrollServiceImpl) GetPeriodSummary(ctx context.Context, id string) (payroll.PeriodSummaryResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}

	period, err := s.periodRepo.GetPeriodByID(ctx, id, companyID)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}

	items, err := s.payrollRepo.GetLineItemsByPeriod(ctx, id, companyID)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, fmt.Errorf("failed to get line items: %w", err)
	}

	return payroll.PeriodSummaryResponse{
		Period:        mapPeriodToResponse(period),
		EmployeeCount: len(items),
		Items:         mapToLineItemResponses(items),
		Totals:        mapTotalsToResponse(s.calculator.Totals(items)),
	}, nil
}

// ========== HELPERS ==========

func mapPeriodToResponse(p payroll.PayPeriod) payroll.PeriodResponse {
	return payroll.PeriodResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		Name:      p.Name,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
		PayDate:   p.PayDate.Format("2006-01-02"),
		Status:    string(p.Status),
	}
}

func mapToLineItemResponse(item payroll.LineItem) payroll.LineItemResponse {
	employeeName := ""
	employeeCode := ""
	if item.EmployeeName != nil {
		employeeName = *item.EmployeeName
	}
	if item.EmployeeCode != nil {
		employeeCode = *item.EmployeeCode
	}

	return payroll.LineItemResponse{
		ID:             item.ID,
		PeriodID:       item.PeriodID,
		EmployeeID:     item.EmployeeID,
		EmployeeName:   employeeName,
		EmployeeCode:   employeeCode,
		HourlyRate:     item.HourlyRate,
		HoursWorked:    item.HoursWorked,
		OvertimeHours:  item.OvertimeHours,
		BasicPay:       item.BasicPay,
		OvertimeAmount: item.OvertimeAmount,
		Bonuses:        item.Bonuses,
		GrossPay:       item.GrossPay,
		Deductions:     item.Deductions,
		TotalDeduction: item.Deductions.Total(),
		NetPay:         item.NetPay,
		Flagged:        item.Flagged,
	}
}

func mapToLineItemResponses(items []payroll.LineItem) []payroll.LineItemResponse {
	result := make([]payroll.LineItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, mapToLineItemResponse(item))
	}
	return result
}

func mapTotalsToResponse(t payroll.PeriodTotals) payroll.TotalsResponse {
	return payroll.TotalsResponse{
		TotalHours:      t.TotalHours,
		TotalOvertime:   t.TotalOvertime,
		TotalGross:      t.TotalGross,
		TotalDeductions: t.TotalDeductions,
		TotalNet:        t.TotalNet,
	}
}
