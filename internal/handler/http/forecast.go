package http

import (
	"net/http"

	"github.com/worklane-hr/worklane-backend-go/internal/domain/forecast"
	"github.com/worklane-hr/worklane-backend-go/internal/handler/http/response"
)

type ForecastHandler interface {
	GetPayrollTrend(w http.ResponseWriter, r *http.Request)
	GetAttendanceTrend(w http.ResponseWriter, r *http.Request)
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type forecastHandlerImpl struct {
	forecastService forecast.ForecastService
}

func NewForecastHandler(forecastService forecast.ForecastService) ForecastHandler {
	return &forecastHandlerImpl{
		forecastService: forecastService,
	}
}

// GetPayrollTrend implements ForecastHandler.
func (h *forecastHandlerImpl) GetPayrollTrend(w http.ResponseWriter, r *http.Request) {
	result, err := h.forecastService.GetPayrollTrend(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAttendanceTrend implements ForecastHandler.
func (h *forecastHandlerImpl) GetAttendanceTrend(w http.ResponseWriter, r *http.Request) {
	result, err := h.forecastService.GetAttendanceTrend(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDashboard implements ForecastHandler.
func (h *forecastHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.forecastService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
