package http

import (
	"log/slog"
	"os"

	"github.com/aryamhrt/internal-access-management-tools/internal/handler/http/middleware"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	env string,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	applicationHandler ApplicationHandler,
	accessRequestHandler AccessRequestHandler,
	accessRegistryHandler AccessRegistryHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "internal-access-management"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	// The tool is only reachable on the office network, so the CORS
	// policy stays open and the cookies do the gatekeeping.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/google-login", authHandler.GoogleLogin)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
			})

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))
				r.Post("/logout", authHandler.Logout)
				r.Get("/me", authHandler.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireSuperAdmin)
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Get("/{id}", userHandler.GetByID)
				r.Put("/{id}", userHandler.Update)
				r.Post("/{id}/offboard", userHandler.Offboard)
			})

			r.Route("/applications", func(r chi.Router) {
				r.Get("/", applicationHandler.List)
				r.Get("/{id}", applicationHandler.GetByID)

				// Super admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSuperAdmin)
					r.Post("/", applicationHandler.Create)
					r.Put("/{id}", applicationHandler.Update)
					r.Delete("/{id}", applicationHandler.Delete)
				})
			})

			r.Route("/access-requests", func(r chi.Router) {
				r.Get("/", accessRequestHandler.List)
				r.Post("/", accessRequestHandler.Create)
				r.Get("/{id}", accessRequestHandler.GetByID)

				// Admin only; per-application checks happen in the service
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/{id}/approve", accessRequestHandler.Approve)
					r.Post("/{id}/reject", accessRequestHandler.Reject)
				})
			})

			r.Route("/access-registry", func(r chi.Router) {
				r.Get("/", accessRegistryHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/{id}/revoke", accessRegistryHandler.Revoke)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", dashboardHandler.GetStats)
			})
		})
	})
	return r
}
