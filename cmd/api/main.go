package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/worklane-hr/worklane-backend-go/internal/config"
	appHTTP "github.com/worklane-hr/worklane-backend-go/internal/handler/http"
	"github.com/worklane-hr/worklane-backend-go/internal/pkg/clock"
	"github.com/worklane-hr/worklane-backend-go/internal/pkg/cron"
	"github.com/worklane-hr/worklane-backend-go/internal/pkg/database"
	"github.com/worklane-hr/worklane-backend-go/internal/pkg/jwt"
	"github.com/worklane-hr/worklane-backend-go/internal/repository/postgresql"
	attendanceService "github.com/worklane-hr/worklane-backend-go/internal/service/attendance"
	forecastService "github.com/worklane-hr/worklane-backend-go/internal/service/forecast"
	payrollService "github.com/worklane-hr/worklane-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payPeriodRepo := postgresql.NewPayPeriodRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	systemClock := clock.System()

	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, systemClock)
	payrollSvc := payrollService.NewPayrollService(db, payPeriodRepo, payrollRepo, employeeRepo, attendanceRepo)

	forecaster := forecastService.NewForecaster()
	if cfg.Forecast.NoiseEnabled {
		forecaster = forecastService.NewNoisyForecaster(rand.Float64)
	}
	forecastSvc := forecastService.NewForecastService(reportRepo, forecaster, systemClock)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	forecastHandler := appHTTP.NewForecastHandler(forecastSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			AppVersion:     cfg.App.Version,
			AppEnv:         cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		JWTService,
		attendanceHandler,
		payrollHandler,
		forecastHandler,
	)

	autoCloser := attendanceService.NewAutoCloser(attendanceRepo, systemClock, cfg.Cron.StaleSessionMaxAgeHours)
	scheduler := cron.NewScheduler()
	scheduler.Register("attendance-auto-close", time.Hour, autoCloser.Run)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
