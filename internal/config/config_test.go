package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "REDIS_URL", "LOGIN_DELAY", "SESSION_TTL", "CORS_ORIGINS", "SEED_FIXTURES"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.True(t, cfg.SeedFixtures)
	assert.Equal(t, time.Second, cfg.LoginDelay)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Len(t, cfg.UsuariosPadrao, 2)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOGIN_DELAY", "250")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("SEED_FIXTURES", "false")
	t.Setenv("CORS_ORIGINS", "https://a.com, https://b.com,")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.LoginDelay)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.SeedFixtures)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, cfg.CORSOrigins)
}
