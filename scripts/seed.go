//go:build ignore

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hugh/taskhub/internal/auth"
	"github.com/hugh/taskhub/internal/database"
	"github.com/hugh/taskhub/internal/tenancy"
	"github.com/hugh/taskhub/pkg/config"
	"github.com/hugh/taskhub/pkg/util"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.NewLogger(cfg.Server.Env)

	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	ctx := context.Background()
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry())
	authService := auth.NewService(db, jwtService, auth.NewHasher(cfg.Auth.BcryptCost))

	email := os.Getenv("SEED_EMAIL")
	password := os.Getenv("SEED_PASSWORD")
	if email == "" {
		email = "alice@example.com"
	}
	if password == "" {
		password = "password123"
	}

	_, err = authService.Register(ctx, auth.RegisterInput{
		Name:     "Alice",
		Email:    email,
		Password: password,
	})
	if err != nil && !errors.Is(err, auth.ErrUserExists) {
		log.Fatalf("failed to create user: %v", err)
	}

	login, err := authService.Login(ctx, auth.LoginInput{Email: email, Password: password})
	if err != nil {
		log.Fatalf("failed to log in as %s: %v", email, err)
	}

	svc := tenancy.NewService(tenancy.NewGormRepository(db), logger)
	tenant, _, err := svc.CreateTenant(ctx, login.User.ID, tenancy.CreateTenantInput{Name: "Acme"})
	if err != nil {
		log.Fatalf("failed to create tenant: %v", err)
	}

	project, err := svc.CreateProject(ctx, login.User.ID, tenant.ID, "Launch")
	if err != nil {
		log.Fatalf("failed to create project: %v", err)
	}

	fmt.Printf("Seeded user %s\n", login.User.Email)
	fmt.Printf("Tenant: %s (%s)\n", tenant.Name, tenant.ID)
	fmt.Printf("Project: %s (%s)\n", project.Name, project.ID)
	fmt.Printf("Token: %s\n", login.Token)
}
