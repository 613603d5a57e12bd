package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the given keys for the duration of the test.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     time.Minute,
			ShutdownTimeout: 5 * time.Second,
		},
		Logger: LoggerConfig{Level: "info", Format: "json"},
		Store:  StoreConfig{Driver: StoreDriverREST, URL: "https://club.example.co", AnonKey: "anon"},
		Session: SessionConfig{
			SnapshotBackend: SnapshotBackendMemory,
			SnapshotName:    "auth-store",
			CookieName:      "volleystats_client",
		},
		GinMode: "release",
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t, "SERVER_PORT", "LOG_LEVEL", "GIN_MODE", "STORE_DRIVER", "STORE_URL",
		"STORE_ANON_KEY", "SNAPSHOT_BACKEND", "SNAPSHOT_NAME", "SESSION_COOKIE")

	cfg := LoadFromEnv()

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, StoreDriverREST, cfg.Store.Driver)
	assert.Equal(t, SnapshotBackendMemory, cfg.Session.SnapshotBackend)
	assert.Equal(t, "auth-store", cfg.Session.SnapshotName)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv_CustomValues(t *testing.T) {
	t.Setenv("SERVER_PORT", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg := LoadFromEnv()

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("invalid server config", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.ReadTimeout = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server config validation failed")
	})

	t.Run("invalid logger config", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logger.Level = "trace"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logger config validation failed")
	})

	t.Run("invalid store driver", func(t *testing.T) {
		cfg := validConfig()
		cfg.Store.Driver = "mysql"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid STORE_DRIVER")
	})

	t.Run("invalid snapshot backend", func(t *testing.T) {
		cfg := validConfig()
		cfg.Session.SnapshotBackend = "etcd"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "session config validation failed")
	})

	t.Run("invalid gin mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.GinMode = "production"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid GIN_MODE")
	})
}

func TestLoadStoreConfigFromEnv(t *testing.T) {
	t.Run("falls back to placeholders with a warning", func(t *testing.T) {
		clearEnv(t, "STORE_DRIVER", "STORE_URL", "STORE_ANON_KEY")

		cfg := LoadStoreConfigFromEnv()

		assert.Equal(t, PlaceholderStoreURL, cfg.URL)
		assert.Equal(t, PlaceholderStoreKey, cfg.AnonKey)
		assert.True(t, cfg.IsPlaceholder())
		assert.Len(t, cfg.Warnings, 1)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("configured values have no warning", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "rest")
		t.Setenv("STORE_URL", "https://club.example.co")
		t.Setenv("STORE_ANON_KEY", "anon")

		cfg := LoadStoreConfigFromEnv()

		assert.Equal(t, "https://club.example.co", cfg.URL)
		assert.False(t, cfg.IsPlaceholder())
		assert.Empty(t, cfg.Warnings)
	})

	t.Run("postgres driver requires a signing secret", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "postgres")
		t.Setenv("STORE_JWT_SECRET", "short")

		cfg := LoadStoreConfigFromEnv()

		assert.Empty(t, cfg.Warnings)
		assert.Error(t, cfg.Validate())

		cfg.JWTSecret = "a-long-enough-signing-secret"
		assert.NoError(t, cfg.Validate())
	})
}

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		name string
		cfg  ServerConfig
		want string
	}{
		{"port only", ServerConfig{Port: ":8080"}, ":8080"},
		{"port without colon", ServerConfig{Port: "8080"}, ":8080"},
		{"host and port", ServerConfig{Host: "127.0.0.1", Port: ":9000"}, "127.0.0.1:9000"},
		{"ipv6 host", ServerConfig{Host: "::1", Port: "9000"}, "[::1]:9000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Address())
		})
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_INT_BAD", "forty-two")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_DURATION", "1m30s")
	t.Setenv("TEST_BLANK", "   ")

	assert.Equal(t, 42, GetEnvInt("TEST_INT", 0))
	assert.Equal(t, 7, GetEnvInt("TEST_INT_BAD", 7))
	assert.True(t, GetEnvBool("TEST_BOOL", false))
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_DURATION", 0))
	assert.Equal(t, "default", GetEnv("TEST_BLANK", "default"))
	assert.Equal(t, []string{"x"}, GetEnvList("TEST_MISSING_LIST", []string{"x"}))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("VOLLEY_DOTENV_KEY=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("VOLLEY_DOTENV_KEY") })

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-file", GetEnv("VOLLEY_DOTENV_KEY", ""))
}
