package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/teampulse/workload-backend-go/internal/handler/http/middleware"
	"github.com/teampulse/workload-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	reportHandler ReportHandler,
	rosterHandler RosterHandler,
	userHandler UserHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workload-pulse"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Post("/auth/logout", authHandler.Logout)

			// Employee surface
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireEmployee)
				r.Post("/reports", reportHandler.Submit)
				r.Get("/reports/latest", reportHandler.Latest)
			})

			// Manager surface
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)

				r.Route("/roster", func(r chi.Router) {
					r.Get("/", rosterHandler.View)
					r.Post("/refresh", rosterHandler.Refresh)
					r.Get("/departments", rosterHandler.Departments)
					r.Post("/filters/departments", rosterHandler.ToggleDepartment)
					r.Post("/filters/levels", rosterHandler.ToggleLevel)
					r.Delete("/filters", rosterHandler.ClearFilters)
				})

				r.Route("/users", func(r chi.Router) {
					r.Post("/", userHandler.AddEmployee)
					r.Post("/departments", userHandler.AddDepartment)
					r.Delete("/{id}", userHandler.DeleteEmployee)
				})
			})
		})
	})
	return r
}
