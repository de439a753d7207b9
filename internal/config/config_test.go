package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_URI", "STORE_DATABASE", "USERS_PATH", "LOG_LEVEL", "ENFORCE_ROLES", "CORS_ORIGINS"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":4000", cfg.HTTPAddr())
	assert.Equal(t, "mongodb://localhost:27017", cfg.StoreURI)
	assert.Equal(t, "healthtrack", cfg.StoreDatabase)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.EnforceRoles)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "8081")
	t.Setenv("STORE_URI", "memory://")
	t.Setenv("ENFORCE_ROLES", "true")
	t.Setenv("CORS_ORIGINS", "http://a.example,http://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.HTTPAddr())
	assert.Equal(t, "memory://", cfg.StoreURI)
	assert.True(t, cfg.EnforceRoles)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins)
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoadInvalidBool(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ENFORCE_ROLES", "maybe")
	_, err := Load()
	assert.Error(t, err)
}
