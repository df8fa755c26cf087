package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"STORAGE_DRIVER", "GIN_MODE", "JWT_SECRET_KEY", "JWT_EXPIRATION_HOURS", "APP_BASE_URL", "DATABASE_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.App.StorageDriver)
	assert.Equal(t, "http://localhost:3000", cfg.App.BaseURL)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.NotEmpty(t, cfg.JWT.SecretKey)
	assert.Equal(t, "prod_TRS7wtfsgEcyYI", cfg.Stripe.ProProductID)
	assert.False(t, cfg.Stripe.Enabled())
	assert.Equal(t, []string{"*"}, cfg.App.AllowedOrigins)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("APP_BASE_URL", "https://loja.example.com/")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.com, https://b.com")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_x")
	t.Setenv("SEED_DEMO_DATA", "false")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.App.StorageDriver)
	assert.Equal(t, "https://loja.example.com", cfg.App.BaseURL)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, cfg.App.AllowedOrigins)
	assert.True(t, cfg.Stripe.Enabled())
	assert.False(t, cfg.App.SeedDemoData)
}

func TestValidate(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")
	_, err := FromEnv()
	assert.ErrorIs(t, err, ErrInvalidStorage)

	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("JWT_SECRET_KEY", "")
	_, err = FromEnv()
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestConnectionString(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: 5432, User: "postgres", Password: "p@ss", Database: "lojista_x", SSLMode: "disable"}
	assert.Equal(t, "postgres://postgres:p%40ss@db:5432/lojista_x?sslmode=disable", db.ConnectionString())

	db.URL = "postgres://custom"
	assert.Equal(t, "postgres://custom", db.ConnectionString())
}
