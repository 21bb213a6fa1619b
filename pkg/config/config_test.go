package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("JWT_EXPIRY_HOURS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 3*time.Hour, cfg.JWT.Expiry())
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("JWT_EXPIRY_HOURS", "12")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.False(t, cfg.Server.IsDevelopment())
	assert.Equal(t, 12*time.Hour, cfg.JWT.Expiry())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_RejectsNonPositiveExpiry(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_URL(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "app",
		Password: "p@ss",
		Name:     "taskhub",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://app:p%40ss@db:5432/taskhub?sslmode=disable", d.URL())
	assert.Equal(t, "host=db port=5432 user=app password=p@ss dbname=taskhub sslmode=disable", d.DSN())
}
