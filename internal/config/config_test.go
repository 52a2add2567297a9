package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		// t.Setenv sets the environment variable for the duration of the test
		// and automatically restores it afterwards.
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "8080")
		t.Setenv("APP_ENV", "test")
		t.Setenv("JWT_SECRET", "testsecret")
		t.Setenv("TOKEN_TTL_MINUTES", "")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "testsecret", cfg.JWTSecret)
		assert.Equal(t, defaultTokenTTLMinutes, cfg.TokenTTLMinutes)
	})

	t.Run("Token TTL override", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("JWT_SECRET", "testsecret")
		t.Setenv("TOKEN_TTL_MINUTES", "45")

		cfg := LoadConfig()

		assert.Equal(t, 45, cfg.TokenTTLMinutes)
		assert.Equal(t, 45*time.Minute, cfg.TokenTTL())
	})
}

func TestTokenTTL_Default(t *testing.T) {
	cfg := &Config{TokenTTLMinutes: defaultTokenTTLMinutes}
	assert.Equal(t, 20*time.Minute, cfg.TokenTTL())
}
