package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrconsole/attendance-backend-go/internal/handler/http/middleware"
	"github.com/hrconsole/attendance-backend-go/internal/pkg/jwt"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	JWTService jwt.Service,
	ledgerHandler LedgerHandler,
	employeeHandler EmployeeHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-console"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/departments", employeeHandler.Departments)
				r.Get("/designations", employeeHandler.Designations)
			})

			r.Route("/ledger/sessions", func(r chi.Router) {
				r.Post("/", ledgerHandler.BuildSession)

				r.Route("/{sessionID}", func(r chi.Router) {
					r.Get("/", ledgerHandler.GetSession)
					r.Delete("/", ledgerHandler.DeleteSession)
					r.Get("/entries", ledgerHandler.ListEntries)
					r.Get("/requests", ledgerHandler.PendingRequests)
					r.Get("/summary", ledgerHandler.Summary)
					r.Get("/export", ledgerHandler.Export)

					// Manager only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/requests/approve", ledgerHandler.Approve)
						r.Post("/requests/reject", ledgerHandler.Reject)
					})
				})
			})
		})
	})
	return r
}
