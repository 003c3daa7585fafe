package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/forecast"
	"github.com/worklane-hr/worklane-backend-go/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

// trailingMonths is the history window fed into the trend fit.
const trailingMonths = 12

type ForecastServiceImpl struct {
	reportRepo forecast.ReportRepository
	forecaster *Forecaster
	clock      clock.Clock
}

func NewForecastService(reportRepo forecast.ReportRepository, forecaster *Forecaster, clk clock.Clock) forecast.ForecastService {
	return &ForecastServiceImpl{
		reportRepo: reportRepo,
		forecaster: forecaster,
		clock:      clk,
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

func (s *ForecastServiceImpl) GetPayrollTrend(ctx context.Context) (forecast.TrendResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return forecast.TrendResponse{}, err
	}
	return s.payrollTrend(ctx, companyID, s.clock.Now())
}

func (s *ForecastServiceImpl) GetAttendanceTrend(ctx context.Context) (forecast.TrendResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return forecast.TrendResponse{}, err
	}
	return s.attendanceTrend(ctx, companyID, s.clock.Now())
}

func (s *ForecastServiceImpl) GetDashboard(ctx context.Context) (forecast.DashboardResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return forecast.DashboardResponse{}, err
	}

	now := s.clock.Now()

	var payrollTrend, attendanceTrend forecast.TrendResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		payrollTrend, err = s.payrollTrend(gctx, companyID, now)
		return err
	})
	g.Go(func() error {
		var err error
		attendanceTrend, err = s.attendanceTrend(gctx, companyID, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return forecast.DashboardResponse{}, err
	}

	return forecast.DashboardResponse{
		Payroll:    payrollTrend,
		Attendance: attendanceTrend,
	}, nil
}

func (s *ForecastServiceImpl) payrollTrend(ctx context.Context, companyID string, now time.Time) (forecast.TrendResponse, error) {
	history, err := s.reportRepo.MonthlyPayrollTotals(ctx, companyID, now, trailingMonths)
	if err != nil {
		return forecast.TrendResponse{}, fmt.Errorf("failed to get monthly payroll totals: %w", err)
	}

	result := s.forecaster.Project(history, MoneyNoiseFactor, now)
	return forecast.TrendResponse{
		History:  history,
		Forecast: result.Points,
		Growth:   result.GrowthPercent,
	}, nil
}

func (s *ForecastServiceImpl) attendanceTrend(ctx context.Context, companyID string, now time.Time) (forecast.TrendResponse, error) {
	history, err := s.reportRepo.MonthlyAttendanceHours(ctx, companyID, now, trailingMonths)
	if err != nil {
		return forecast.TrendResponse{}, fmt.Errorf("failed to get monthly attendance hours: %w", err)
	}

	result := s.forecaster.Project(history, HoursNoiseFactor, now)
	return forecast.TrendResponse{
		History:  history,
		Forecast: result.Points,
		Growth:   result.GrowthPercent,
	}, nil
}
