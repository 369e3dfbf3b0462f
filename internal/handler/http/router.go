package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/synczenith/synczenith-backend-go/internal/config"
	"github.com/synczenith/synczenith-backend-go/internal/handler/http/middleware"
	"github.com/synczenith/synczenith-backend-go/internal/handler/http/response"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	systemHandler SystemHandler,
	authHandler AuthHandler,
	hrmsHandler HRMSHandler,
	employeeHandler EmployeeHandler,
	payrollHandler PayrollHandler,
	payslipHandler PayslipHandler,
	reportHandler ReportHandler,
	settingsHandler SettingsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
		Level:       cfg.SlogLevel(),
	})).With(
		slog.String("app", "synczenith"),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.Get("/", systemHandler.Root)
	r.Get("/test", systemHandler.Health)
	r.Get("/schema", systemHandler.Schema)

	r.Route("/api", func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.Identity)

		r.Post("/auth/login", authHandler.Login)

		r.Route("/hrms", func(r chi.Router) {
			r.Post("/connect", hrmsHandler.Connect)
			r.Post("/sync", hrmsHandler.Sync)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/", payrollHandler.List)
			r.Post("/", payrollHandler.Create)
			r.Get("/{id}", payrollHandler.Get)
			r.Post("/{id}/process", payrollHandler.Process)
		})

		r.Route("/payslips", func(r chi.Router) {
			r.Get("/", payslipHandler.List)
			r.Post("/send", payslipHandler.Send)
		})

		r.Get("/reports/summary", reportHandler.GetPayrollSummary)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", settingsHandler.Get)
			r.Put("/", settingsHandler.Update)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}
