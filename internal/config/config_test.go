package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func setMinimalEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("SESSION_DRIVER", "memory")
}

func TestLoadDefaults(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.GetServerAddr())
	assert.Equal(t, "cf_auth", cfg.Session.Key)
	assert.Equal(t, 12*time.Hour, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 5<<20, cfg.Intake.MaxDocumentBytes)
	assert.Equal(t, "America/Mexico_City", cfg.ExportLocation().String())
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.GetCORSOrigins())
	assert.False(t, cfg.UsesRedis())
}

func TestLoadOverrides(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SESSION_DRIVER", "redis")
	t.Setenv("CORS_TRUSTED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("EXPORT_TIMEZONE", "UTC")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.GetServerAddr())
	assert.True(t, cfg.UsesRedis())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.GetCORSOrigins())
	assert.Equal(t, time.UTC, cfg.ExportLocation())
	assert.Equal(t, 30*time.Second, cfg.Limiter.Window)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"short secret", map[string]string{"JWT_SECRET": "short"}},
		{"postgres without dsn", map[string]string{"STORE_DRIVER": "postgres"}},
		{"unknown store", map[string]string{"STORE_DRIVER": "sqlite"}},
		{"unknown session", map[string]string{"SESSION_DRIVER": "cookie"}},
		{"bad env", map[string]string{"APP_ENV": "qa"}},
		{"bad port", map[string]string{"APP_PORT": "70000"}},
		{"bad timezone", map[string]string{"EXPORT_TIMEZONE": "Mars/Olympus"}},
		{"zero burst", map[string]string{"RATE_LIMIT_BURST": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setMinimalEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestMustLoad(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("APP_ENV", "production")

	cfg := MustLoad()
	assert.True(t, cfg.IsProduction())

	t.Setenv("JWT_SECRET", "")
	assert.Panics(t, func() { MustLoad() })
}
