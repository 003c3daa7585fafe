package forecast

// HistoryPoint is one observed value in a chronological monthly series.
type HistoryPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ForecastPoint is a projected future value. IsProjection is always true for
// generated points; it exists so charts can style history and projection
// differently from one mixed series.
type ForecastPoint struct {
	Period       string  `json:"period"`
	Index        int     `json:"index"`
	Value        float64 `json:"value"`
	IsProjection bool    `json:"is_projection"`
}

// ForecastResult carries the projected points plus the growth of the last
// projected value over the last observed value.
type ForecastResult struct {
	Points        []ForecastPoint `json:"points"`
	GrowthPercent float64         `json:"growth_percent"`
}

type TrendResponse struct {
	History  []HistoryPoint  `json:"history"`
	Forecast []ForecastPoint `json:"forecast"`
	Growth   float64         `json:"growth_percent"`
}

// DashboardResponse combines both trend series for the forecasting dashboard.
type DashboardResponse struct {
	Payroll    TrendResponse `json:"payroll"`
	Attendance TrendResponse `json:"attendance"`
}
