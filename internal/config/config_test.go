package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("значения по умолчанию", func(t *testing.T) {
		t.Setenv("JWT_TTL", "")
		t.Setenv("GEMINI_MODEL", "")

		cfg := Load()

		assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
		assert.Equal(t, "gemini-3-flash-preview", cfg.Assistant.Model)
		assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	})

	t.Run("значения из окружения", func(t *testing.T) {
		t.Setenv("ADMIN_EMAIL", "root@example.com")
		t.Setenv("ADMIN_PASSWORD", "pw")
		t.Setenv("JWT_TTL", "2h")
		t.Setenv("ASSISTANT_TIMEOUT", "15")
		t.Setenv("RATE_LIMIT_ASSISTANT", "5")
		t.Setenv("LOG_DEVELOPMENT", "true")

		cfg := Load()

		assert.Equal(t, "root@example.com", cfg.Bootstrap.AdminEmail)
		assert.Equal(t, "pw", cfg.Bootstrap.AdminPassword)
		assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
		assert.Equal(t, 15*time.Second, cfg.Assistant.Timeout)
		assert.Equal(t, 5, cfg.RateLimit.Limit)
		assert.True(t, cfg.Log.Development)
	})

	t.Run("невалидные значения откатываются к умолчаниям", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_REDIS_DB", "abc")
		t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "soon")

		cfg := Load()

		assert.Equal(t, 0, cfg.RateLimit.RedisDB)
		assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	})
}

func TestValidate(t *testing.T) {
	t.Run("без JWT_SECRET конфигурация невалидна", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		cfg := Load()

		assert.Empty(t, cfg.Auth.JWTSecret, "секрет не должен иметь значения по умолчанию")
		assert.ErrorIs(t, cfg.Validate(), ErrMissingJWTSecret)
		assert.Panics(t, func() { MustLoad() })
	})

	t.Run("секрет задан", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cr3t")

		cfg := MustLoad()

		assert.Equal(t, "s3cr3t", cfg.Auth.JWTSecret)
		assert.NoError(t, cfg.Validate())
	})
}
