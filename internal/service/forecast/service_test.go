package forecast

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/forecast"
	"github.com/worklane-hr/worklane-backend-go/internal/pkg/clock"
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

type stubReportRepo struct {
	payroll    []forecast.HistoryPoint
	attendance []forecast.HistoryPoint

	payrollUntil    time.Time
	attendanceUntil time.Time
}

func (s *stubReportRepo) MonthlyPayrollTotals(ctx context.Context, companyID string, until time.Time, months int) ([]forecast.HistoryPoint, error) {
	s.payrollUntil = until
	return s.payroll, nil
}

func (s *stubReportRepo) MonthlyAttendanceHours(ctx context.Context, companyID string, until time.Time, months int) ([]forecast.HistoryPoint, error) {
	s.attendanceUntil = until
	return s.attendance, nil
}

func TestGetPayrollTrendUsesInjectedClock(t *testing.T) {
	fixed := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	repo := &stubReportRepo{
		payroll: []forecast.HistoryPoint{
			{Label: "Jan 2026", Value: 1000},
			{Label: "Feb 2026", Value: 1100},
			{Label: "Mar 2026", Value: 1200},
		},
	}
	svc := NewForecastService(repo, NewForecaster(), clock.Fixed(fixed))

	resp, err := svc.GetPayrollTrend(claimsContext(t, "company-1"))
	require.NoError(t, err)

	// The history window and the projection labels are both anchored to the
	// injected instant, not the wall clock.
	assert.True(t, repo.payrollUntil.Equal(fixed))
	require.NotEmpty(t, resp.Forecast)
	assert.Equal(t, "Apr 2026", resp.Forecast[0].Period)
	assert.Len(t, resp.History, 3)
}

func TestGetAttendanceTrendWithEmptyHistory(t *testing.T) {
	fixed := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	repo := &stubReportRepo{}
	svc := NewForecastService(repo, NewForecaster(), clock.Fixed(fixed))

	resp, err := svc.GetAttendanceTrend(claimsContext(t, "company-1"))
	require.NoError(t, err)

	assert.Empty(t, resp.History)
	assert.Empty(t, resp.Forecast)
	assert.Zero(t, resp.Growth)
}

func TestGetDashboardFansOutBothTrends(t *testing.T) {
	fixed := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	repo := &stubReportRepo{
		payroll: []forecast.HistoryPoint{
			{Label: "Jan 2026", Value: 1000},
			{Label: "Feb 2026", Value: 1100},
			{Label: "Mar 2026", Value: 1200},
		},
		attendance: []forecast.HistoryPoint{
			{Label: "Jan 2026", Value: 160},
			{Label: "Feb 2026", Value: 150},
			{Label: "Mar 2026", Value: 170},
		},
	}
	svc := NewForecastService(repo, NewForecaster(), clock.Fixed(fixed))

	resp, err := svc.GetDashboard(claimsContext(t, "company-1"))
	require.NoError(t, err)

	assert.Len(t, resp.Payroll.History, 3)
	assert.Len(t, resp.Attendance.History, 3)
	assert.True(t, repo.payrollUntil.Equal(fixed))
	assert.True(t, repo.attendanceUntil.Equal(fixed))
}
