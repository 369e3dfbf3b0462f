package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/synczenith/synczenith-backend-go/internal/config"
	appHTTP "github.com/synczenith/synczenith-backend-go/internal/handler/http"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/cron"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/database"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/docstore"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/jwt"
	"github.com/synczenith/synczenith-backend-go/internal/repository/document"
	serviceAuth "github.com/synczenith/synczenith-backend-go/internal/service/auth"
	employeeService "github.com/synczenith/synczenith-backend-go/internal/service/employee"
	hrmsService "github.com/synczenith/synczenith-backend-go/internal/service/hrms"
	payrollService "github.com/synczenith/synczenith-backend-go/internal/service/payroll"
	payslipService "github.com/synczenith/synczenith-backend-go/internal/service/payslip"
	reportService "github.com/synczenith/synczenith-backend-go/internal/service/report"
	settingsService "github.com/synczenith/synczenith-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	// Money goes out as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("Error connecting to database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := document.Migrate(ctx, store); err != nil {
		slog.Error("Error creating collections", "error", err)
		os.Exit(1)
	}

	employeeRepo := document.NewEmployeeRepository(store)
	payrollRepo := document.NewPayrollRepository(store)
	payslipRepo := document.NewPayslipRepository(store)
	attendanceRepo := document.NewAttendanceRepository(store)
	connectionRepo := document.NewConnectionRepository(store)
	settingsRepo := document.NewSettingsRepository(store)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService := serviceAuth.NewAuthService(JWTService)
	hrmsSvc := hrmsService.NewHRMSService(connectionRepo, employeeRepo, attendanceRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, payslipRepo, payrollService.NewCalculator())
	payslipSvc := payslipService.NewPayslipService(payslipRepo, payrollRepo)
	reportSvc := reportService.NewReportService(payrollRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)

	scheduler := cron.NewScheduler()
	cron.NewHRMSJobs(hrmsSvc, connectionRepo).RegisterJobs(scheduler, cfg.HRMS.SyncInterval)
	scheduler.Start(ctx)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		appHTTP.NewSystemHandler(store, cfg.Database.Driver),
		appHTTP.NewAuthHandler(authService),
		appHTTP.NewHRMSHandler(hrmsSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewPayslipHandler(payslipSvc),
		appHTTP.NewReportHandler(reportSvc),
		appHTTP.NewSettingsHandler(settingsSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", "http://localhost"+server.Addr, "driver", cfg.Database.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	scheduler.Wait()
	slog.Info("Server stopped")
}

func openStore(ctx context.Context, cfg *config.Config) (docstore.Store, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(ctx, cfg.Database.SQLitePath)
		if err != nil {
			return nil, err
		}
		return docstore.NewSQLiteStore(db), nil
	default:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, err
		}
		return docstore.NewPostgresStore(db), nil
	}
}
