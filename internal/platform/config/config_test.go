package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWTSECRET", "")

	_, err := LoadConfig()
	require.Error(t, err, "startup must not proceed without a signing secret")
	assert.Contains(t, err.Error(), "auth.jwtSecret")
}

func TestLoadConfigReadsSecretFromEnv(t *testing.T) {
	t.Setenv("AUTH_JWTSECRET", "top-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "top-secret", cfg.Auth.JWTSecret)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("AUTH_JWTSECRET", "top-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, 7*24*60, cfg.Auth.TokenTTLMinutes)
}
