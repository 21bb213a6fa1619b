package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hugh/taskhub/internal/api/handlers"
	"github.com/hugh/taskhub/internal/api/middleware"
	"github.com/hugh/taskhub/internal/auth"
	"github.com/hugh/taskhub/internal/tenancy"
	"gorm.io/gorm"
)

type Router struct {
	chi.Router
}

type RouterConfig struct {
	DB             *gorm.DB
	Logger         *slog.Logger
	JWTService     auth.TokenService
	AuthService    auth.Authenticator
	TenancyService *tenancy.Service
	AllowedOrigins []string // CORS allowed origins; empty allows any origin
}

func NewRouter(cfg RouterConfig) *Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	healthHandler := handlers.NewHealthHandler(cfg.DB)
	authHandler := handlers.NewAuthHandler(cfg.AuthService, cfg.Logger)
	tenantHandler := handlers.NewTenantHandler(cfg.TenancyService, cfg.Logger)
	projectHandler := handlers.NewProjectHandler(cfg.TenancyService, cfg.Logger)
	taskHandler := handlers.NewTaskHandler(cfg.TenancyService, cfg.Logger)

	// Public endpoints
	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTService))

		r.Get("/auth/me", authHandler.Me)

		r.Route("/tenant", func(r chi.Router) {
			r.Get("/my", tenantHandler.My)
			r.Post("/", tenantHandler.Create)
			r.Post("/join", tenantHandler.Join)
		})

		r.Route("/project", func(r chi.Router) {
			r.Post("/", projectHandler.Create)
			r.Get("/list/{tenantId}", projectHandler.List)
		})

		r.Route("/task", func(r chi.Router) {
			r.Post("/", taskHandler.Create)
			r.Get("/{projectId}", taskHandler.List)
			r.Put("/{taskId}", taskHandler.Update)
		})
	})

	return &Router{r}
}
