package forecast

import (
	"time"

	"github.com/worklane-hr/worklane-backend-go/internal/domain/forecast"
)

const (
	// minHistoryPoints guards the least-squares fit: below three points the
	// denominator degenerates and the trend is meaningless.
	minHistoryPoints = 3

	// projectionHorizon is how many future periods each forecast produces.
	projectionHorizon = 12

	// Noise factors per series kind, applied only when a random source is set.
	MoneyNoiseFactor = 0.05
	HoursNoiseFactor = 0.03
)

// RandSource yields values in [0, 1). It is injectable so forecasts are
// deterministic by default and in tests; production can opt into cosmetic
// per-point noise via config.
type RandSource func() float64

// Forecaster fits a linear trend over a monthly history and projects the
// next twelve periods. It never fails: thin or malformed input yields an
// empty forecast.
type Forecaster struct {
	rand RandSource
}

// NewForecaster returns a deterministic forecaster (zero noise).
func NewForecaster() *Forecaster {
	return &Forecaster{}
}

// NewNoisyForecaster returns a forecaster that perturbs each projected point
// with bounded variance drawn from src.
func NewNoisyForecaster(src RandSource) *Forecaster {
	return &Forecaster{rand: src}
}

// Fit computes the ordinary least squares line over (index, value) pairs
// with index 0..n-1. ok is false when there are too few points to fit.
func (f *Forecaster) Fit(values []float64) (slope, intercept float64, ok bool) {
	n := len(values)
	if n < minHistoryPoints {
		return 0, 0, false
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return 0, 0, false
	}

	slope = (fn*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / fn
	return slope, intercept, true
}

// Project extrapolates the history twelve periods forward. Labels advance
// month by month from the caller's current time. noiseFactor scales the
// optional variance; projected values are clamped at zero.
func (f *Forecaster) Project(history []forecast.HistoryPoint, noiseFactor float64, now time.Time) forecast.ForecastResult {
	values := make([]float64, len(history))
	for i, p := range history {
		values[i] = p.Value
	}

	slope, intercept, ok := f.Fit(values)
	if !ok {
		return forecast.ForecastResult{Points: []forecast.ForecastPoint{}}
	}

	n := len(values)
	points := make([]forecast.ForecastPoint, 0, projectionHorizon)
	for i := n; i < n+projectionHorizon; i++ {
		predicted := slope*float64(i) + intercept

		if f.rand != nil && noiseFactor > 0 {
			predicted += predicted * noiseFactor * (f.rand() - 0.5)
		}
		if predicted < 0 {
			predicted = 0
		}

		label := now.AddDate(0, i-n+1, 0)
		points = append(points, forecast.ForecastPoint{
			Period:       label.Format("Jan 2006"),
			Index:        i,
			Value:        predicted,
			IsProjection: true,
		})
	}

	return forecast.ForecastResult{
		Points:        points,
		GrowthPercent: growth(values[n-1], points[len(points)-1].Value),
	}
}

// growth is the percentage change of the last forecast value over the last
// historical value, guarded to 0 when history ends at zero.
func growth(lastHistorical, lastForecast float64) float64 {
	if lastHistorical == 0 {
		return 0
	}
	return (lastForecast - lastHistorical) / lastHistorical * 100
}
