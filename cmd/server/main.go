package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hugh/taskhub/internal/api"
	"github.com/hugh/taskhub/internal/auth"
	"github.com/hugh/taskhub/internal/database"
	"github.com/hugh/taskhub/internal/tenancy"
	"github.com/hugh/taskhub/pkg/config"
	"github.com/hugh/taskhub/pkg/util"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := util.NewLogger(cfg.Server.Env)
	slog.SetDefault(logger)

	logger.Info("starting taskhub server",
		"env", cfg.Server.Env,
		"addr", cfg.Server.Addr(),
	)

	if !cfg.Server.IsDevelopment() && cfg.JWT.Secret == config.DefaultJWTSecret {
		logger.Warn("JWT_SECRET is the built-in default; set it before serving real users")
	}

	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Schema changes go through cmd/migrate.

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry())
	authService := auth.NewService(db, jwtService, auth.NewHasher(cfg.Auth.BcryptCost))
	tenancyService := tenancy.NewService(tenancy.NewGormRepository(db), logger)

	router := api.NewRouter(api.RouterConfig{
		DB:             db,
		Logger:         logger,
		JWTService:     jwtService,
		AuthService:    authService,
		TenancyService: tenancyService,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", cfg.Server.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info("server stopped")
}
