package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost/cms")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_SECRET")

	t.Setenv("AUTH_SECRET", "s3cret")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD")

	t.Setenv("ADMIN_PASSWORD", "hunter2")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/cms", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.AuthSecret)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
}

func TestLoadAcceptsPasswordHashAlone(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/cms")
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.AdminPassword)
	assert.NotEmpty(t, cfg.AdminPasswordHash)
}

func TestIsProduction(t *testing.T) {
	cfg := AppConfig{Env: "production"}
	assert.True(t, cfg.IsProduction())

	cfg.Env = "Production"
	assert.True(t, cfg.IsProduction())

	cfg.Env = "development"
	assert.False(t, cfg.IsProduction())
}
