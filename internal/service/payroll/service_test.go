package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/employee"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/payroll"
)

// claimsContext builds a context carrying verified JWT claims, the same shape
// the auth middleware produces.
func claimsContext(t *testing.T, companyID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"company_id":  companyID,
		"employee_id": "emp-1",
		"user_id":     "user-1",
	})
	require.NoError(t, err)
	token, err := ja.Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type stubPeriodRepo struct {
	period payroll.PayPeriod
	err    error
}

func (s *stubPeriodRepo) CreatePeriod(ctx context.Context, period payroll.PayPeriod) (payroll.PayPeriod, error) {
	return period, nil
}

func (s *stubPeriodRepo) GetPeriodByID(ctx context.Context, id string, companyID string) (payroll.PayPeriod, error) {
	return s.period, s.err
}

func (s *stubPeriodRepo) ListPeriods(ctx context.Context, companyID string, filter payroll.PeriodFilter) ([]payroll.PayPeriod, int64, error) {
	return nil, 0, nil
}

func (s *stubPeriodRepo) UpdatePeriodStatus(ctx context.Context, id string, companyID string, status payroll.PeriodStatus) error {
	return nil
}

type stubEmployeeRepo struct {
	byID    map[string]employee.Employee
	actives []employee.Employee
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	emp, ok := s.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *stubEmployeeRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return s.actives, nil
}

func openPeriod() payroll.PayPeriod {
	return payroll.PayPeriod{
		ID:        "period-1",
		CompanyID: "company-1",
		Name:      "March 2026",
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		PayDate:   time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		Status:    payroll.PeriodStatusOpen,
	}
}

func newTestService(periodRepo payroll.PayPeriodRepository, employeeRepo employee.EmployeeRepository) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		periodRepo:   periodRepo,
		employeeRepo: employeeRepo,
		calculator:   NewCalculator(),
	}
}

func TestRunPayrollRejectsClosedPeriod(t *testing.T) {
	period := openPeriod()
	period.Status = payroll.PeriodStatusClosed
	svc := newTestService(&stubPeriodRepo{period: period}, &stubEmployeeRepo{})

	_, err := svc.RunPayroll(claimsContext(t, "company-1"), payroll.RunPayrollRequest{
		PeriodID: "period-1",
	})
	assert.ErrorIs(t, err, payroll.ErrPeriodNotOpen)
}

func TestRunPayrollRejectsUnknownPeriod(t *testing.T) {
	svc := newTestService(&stubPeriodRepo{err: payroll.ErrPeriodNotFound}, &stubEmployeeRepo{})

	_, err := svc.RunPayroll(claimsContext(t, "company-1"), payroll.RunPayrollRequest{
		PeriodID: "nope",
	})
	assert.ErrorIs(t, err, payroll.ErrPeriodNotFound)
}

func TestRunPayrollRejectsUnknownEmployee(t *testing.T) {
	svc := newTestService(&stubPeriodRepo{period: openPeriod()}, &stubEmployeeRepo{})

	_, err := svc.RunPayroll(claimsContext(t, "company-1"), payroll.RunPayrollRequest{
		PeriodID:    "period-1",
		EmployeeIDs: []string{"missing-employee"},
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestClosePeriodTwice(t *testing.T) {
	period := openPeriod()
	period.Status = payroll.PeriodStatusClosed
	svc := newTestService(&stubPeriodRepo{period: period}, &stubEmployeeRepo{})

	_, err := svc.ClosePeriod(claimsContext(t, "company-1"), "period-1")
	assert.ErrorIs(t, err, payroll.ErrPeriodAlreadyClosed)
}
