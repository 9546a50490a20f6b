package config

import (
	"testing"
	"time"

	apperrors "audiocheck/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Run("returns environment variable value when set", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_VAR", "custom_value")

		result := getEnv("TEST_CONFIG_VAR", "default_value")

		assert.Equal(t, "custom_value", result)
	})

	t.Run("returns default value when env var not set", func(t *testing.T) {
		result := getEnv("NONEXISTENT_CONFIG_VAR_12345", "default_value")

		assert.Equal(t, "default_value", result)
	})

	t.Run("returns default value when env var is empty string", func(t *testing.T) {
		t.Setenv("EMPTY_CONFIG_VAR", "")

		result := getEnv("EMPTY_CONFIG_VAR", "default_value")

		assert.Equal(t, "default_value", result)
	})
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
	}{
		{"minutes", "15m", 15 * time.Minute},
		{"hours", "168h", 168 * time.Hour},
		{"seconds", "60s", 60 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseDuration("TEST", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := parseDuration("REQUEST_TIMEOUT", "sixty")
		assert.ErrorIs(t, err, apperrors.ErrInvalidConfig)
		assert.ErrorContains(t, err, "REQUEST_TIMEOUT")
	})
}

func TestLoad(t *testing.T) {
	t.Run("loads config with custom values", func(t *testing.T) {
		t.Setenv("RUN_NAME", "staging")
		t.Setenv("BASE_URL", "https://audio.example.com")
		t.Setenv("FIXTURES_DIR", "/srv/fixtures")
		t.Setenv("ITERATIONS", "25")
		t.Setenv("ITERATION_RATE", "2.5")
		t.Setenv("REQUEST_TIMEOUT", "30s")
		t.Setenv("VERIFY_ROUND_TRIP", "true")
		t.Setenv("SEED", "42")
		t.Setenv("REPORT_FILE", "out.json")
		t.Setenv("S3_ENDPOINT", "s3.example.com:9000")
		t.Setenv("S3_ACCESS_KEY", "myaccesskey")
		t.Setenv("S3_SECRET_KEY", "mysecretkey")
		t.Setenv("S3_BUCKET", "my-bucket")
		t.Setenv("S3_PREFIX", "nightly/")
		t.Setenv("S3_USE_SSL", "true")
		t.Setenv("REDIS_URI", "redis.example.com:6379")
		t.Setenv("REPORT_TTL", "24h")

		cfg, err := Load()

		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "staging", cfg.RunName)
		assert.Equal(t, "https://audio.example.com", cfg.BaseURL)
		assert.Equal(t, "/srv/fixtures", cfg.FixturesDir)
		assert.Equal(t, 25, cfg.Iterations)
		assert.Equal(t, 2.5, cfg.IterationRate)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.True(t, cfg.VerifyRoundTrip)
		assert.Equal(t, uint64(42), cfg.Seed)
		assert.Equal(t, "out.json", cfg.ReportFile)
		assert.Equal(t, "s3.example.com:9000", cfg.S3Endpoint)
		assert.Equal(t, "myaccesskey", cfg.S3AccessKey)
		assert.Equal(t, "mysecretkey", cfg.S3SecretKey)
		assert.Equal(t, "my-bucket", cfg.S3Bucket)
		assert.Equal(t, "nightly/", cfg.S3Prefix)
		assert.True(t, cfg.S3UseSSL)
		assert.Equal(t, "redis.example.com:6379", cfg.RedisURI)
		assert.Equal(t, 24*time.Hour, cfg.ReportTTL)
		assert.True(t, cfg.S3Enabled())
		assert.True(t, cfg.RedisEnabled())
		assert.NoError(t, cfg.Validate())
	})

	t.Run("uses default values", func(t *testing.T) {
		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
		assert.Equal(t, ".", cfg.FixturesDir)
		assert.Equal(t, 1, cfg.Iterations)
		assert.Zero(t, cfg.IterationRate)
		assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
		assert.False(t, cfg.VerifyRoundTrip)
		assert.Zero(t, cfg.Seed)
		assert.Equal(t, 168*time.Hour, cfg.ReportTTL)
		assert.False(t, cfg.S3Enabled())
		assert.False(t, cfg.RedisEnabled())
		assert.NoError(t, cfg.Validate())
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		tests := []struct {
			key   string
			value string
		}{
			{"ITERATIONS", "ten"},
			{"ITERATION_RATE", "fast"},
			{"REQUEST_TIMEOUT", "60"},
			{"REPORT_TTL", "week"},
			{"SEED", "-1"},
		}

		for _, tt := range tests {
			t.Run(tt.key, func(t *testing.T) {
				t.Setenv(tt.key, tt.value)

				cfg, err := Load()

				assert.Nil(t, cfg)
				assert.ErrorIs(t, err, apperrors.ErrInvalidConfig)
				assert.ErrorContains(t, err, tt.key)
			})
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			RunName:        "audio-storage",
			BaseURL:        "http://localhost:8080",
			FixturesDir:    ".",
			Iterations:     1,
			RequestTimeout: time.Minute,
			ReportTTL:      time.Hour,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"not a url", func(c *Config) { c.BaseURL = "localhost:8080" }},
		{"unsupported scheme", func(c *Config) { c.BaseURL = "ftp://localhost" }},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }},
		{"negative rate", func(c *Config) { c.IterationRate = -1 }},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }},
		{"empty fixtures dir", func(c *Config) { c.FixturesDir = "" }},
		{"bucket without keys", func(c *Config) { c.S3Bucket = "reports" }},
	}

	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			assert.ErrorIs(t, cfg.Validate(), apperrors.ErrInvalidConfig)
		})
	}
}

func TestLoadServer(t *testing.T) {
	t.Run("uses default values", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "")
		t.Setenv("GIN_MODE", "")

		cfg := LoadServer()

		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, "debug", cfg.GinMode)
	})

	t.Run("reads env vars", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "3000")
		t.Setenv("GIN_MODE", "release")

		cfg := LoadServer()

		assert.Equal(t, "3000", cfg.ServerPort)
		assert.Equal(t, "release", cfg.GinMode)
	})
}
