package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Blank values fall through to the defaults.
	for _, key := range []string{"PORT", "DATABASE_NAME", "NODE_ENV", "ALLOWED_ORIGINS", "SMTP_PORT"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "evoLearn", cfg.DatabaseName)
	assert.False(t, cfg.Production)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:5174"}, cfg.AllowedOrigins)
	assert.Equal(t, 587, cfg.SMTPPort)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://evolearn.app")

	cfg := LoadConfig()

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.Production)
	assert.Equal(t, []string{"https://evolearn.app"}, cfg.AllowedOrigins)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_KEY", "value")
	assert.Equal(t, "value", getEnv("SOME_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("UNSET_KEY", "fallback"))
}
