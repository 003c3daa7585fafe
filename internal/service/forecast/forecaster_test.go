package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/forecast"
)

func history(values ...float64) []forecast.HistoryPoint {
	points := make([]forecast.HistoryPoint, 0, len(values))
	for _, v := range values {
		points = append(points, forecast.HistoryPoint{Value: v})
	}
	return points
}

func TestFitLinearSeries(t *testing.T) {
	f := NewForecaster()

	slope, intercept, ok := f.Fit([]float64{100, 110, 120})
	require.True(t, ok)
	assert.InDelta(t, 10, slope, 1e-9)
	assert.InDelta(t, 100, intercept, 1e-9)
}

func TestFitFlatSeries(t *testing.T) {
	f := NewForecaster()

	slope, intercept, ok := f.Fit([]float64{50, 50, 50, 50})
	require.True(t, ok)
	assert.InDelta(t, 0, slope, 1e-9)
	assert.InDelta(t, 50, intercept, 1e-9)
}

func TestFitTooFewPoints(t *testing.T) {
	f := NewForecaster()

	_, _, ok := f.Fit([]float64{100, 110})
	assert.False(t, ok)

	_, _, ok = f.Fit(nil)
	assert.False(t, ok)
}

func TestProjectLinearTrend(t *testing.T) {
	f := NewForecaster()
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	result := f.Project(history(100, 110, 120), 0, now)

	require.Len(t, result.Points, 12)
	assert.InDelta(t, 130, result.Points[0].Value, 1e-9)
	assert.InDelta(t, 240, result.Points[11].Value, 1e-9)

	for i, p := range result.Points {
		assert.True(t, p.IsProjection)
		assert.Equal(t, 3+i, p.Index)
	}

	assert.Equal(t, "Apr 2026", result.Points[0].Period)
	assert.Equal(t, "May 2026", result.Points[1].Period)
	assert.Equal(t, "Mar 2027", result.Points[11].Period)

	// Last forecast 240 over last observed 120.
	assert.InDelta(t, 100, result.GrowthPercent, 1e-9)
}

func TestProjectThinHistory(t *testing.T) {
	f := NewForecaster()
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	result := f.Project(history(100, 110), 0, now)

	assert.Empty(t, result.Points)
	assert.Zero(t, result.GrowthPercent)
}

func TestProjectClampsNegativePredictions(t *testing.T) {
	f := NewForecaster()
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	result := f.Project(history(30, 20, 10), 0, now)

	require.Len(t, result.Points, 12)
	for _, p := range result.Points {
		assert.GreaterOrEqual(t, p.Value, 0.0)
	}
	assert.Zero(t, result.Points[11].Value)
}

func TestProjectGrowthGuardedAtZeroHistory(t *testing.T) {
	f := NewForecaster()
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	result := f.Project(history(0, 0, 0), 0, now)

	require.Len(t, result.Points, 12)
	assert.Zero(t, result.GrowthPercent)
}

func TestProjectWithoutRandSourceIsDeterministic(t *testing.T) {
	f := NewForecaster()
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	first := f.Project(history(100, 110, 120), MoneyNoiseFactor, now)
	second := f.Project(history(100, 110, 120), MoneyNoiseFactor, now)

	assert.Equal(t, first, second)
}

func TestProjectNoiseIsBoundedAndSeeded(t *testing.T) {
	// A midpoint source cancels the noise term entirely.
	midpoint := NewNoisyForecaster(func() float64 { return 0.5 })
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	result := midpoint.Project(history(100, 110, 120), MoneyNoiseFactor, now)
	require.Len(t, result.Points, 12)
	assert.InDelta(t, 130, result.Points[0].Value, 1e-9)

	// A maximal source pushes each point up by at most half the noise factor.
	maximal := NewNoisyForecaster(func() float64 { return 0.999999 })
	noisy := maximal.Project(history(100, 110, 120), MoneyNoiseFactor, now)
	for i, p := range noisy.Points {
		base := result.Points[i].Value
		assert.Greater(t, p.Value, base)
		assert.LessOrEqual(t, p.Value, base*(1+MoneyNoiseFactor/2))
	}
}
