package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	apperrors "audiocheck/internal/errors"
	"audiocheck/internal/validator"

	"github.com/joho/godotenv"
)

// Config holds all configuration for a run
type Config struct {
	RunName         string        `validate:"required"`
	BaseURL         string        `validate:"required,http_url"`
	FixturesDir     string        `validate:"required"`
	Iterations      int           `validate:"min=1"`
	IterationRate   float64       `validate:"gte=0"`
	RequestTimeout  time.Duration `validate:"gt=0"`
	VerifyRoundTrip bool
	Seed            uint64
	ReportFile      string

	S3Endpoint  string `validate:"required_with=S3Bucket"`
	S3AccessKey string `validate:"required_with=S3Bucket"`
	S3SecretKey string `validate:"required_with=S3Bucket"`
	S3Bucket    string
	S3Prefix    string
	S3UseSSL    bool

	RedisURI  string
	ReportTTL time.Duration `validate:"gt=0"`
}

// S3Enabled reports whether reports should be archived to a bucket.
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != ""
}

// RedisEnabled reports whether reports should be stored in Redis.
func (c *Config) RedisEnabled() bool {
	return c.RedisURI != ""
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	cfg := &Config{
		RunName:         getEnv("RUN_NAME", "audio-storage"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
		FixturesDir:     getEnv("FIXTURES_DIR", "."),
		VerifyRoundTrip: getEnv("VERIFY_ROUND_TRIP", "false") == "true",
		ReportFile:      getEnv("REPORT_FILE", ""),
		S3Endpoint:      getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey:     getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:     getEnv("S3_SECRET_KEY", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", "reports/"),
		S3UseSSL:        getEnv("S3_USE_SSL", "false") == "true",
		RedisURI:        getEnv("REDIS_URI", ""),
	}

	var err error
	if cfg.Iterations, err = parseInt("ITERATIONS", getEnv("ITERATIONS", "1")); err != nil {
		return nil, err
	}
	if cfg.IterationRate, err = parseFloat("ITERATION_RATE", getEnv("ITERATION_RATE", "0")); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = parseDuration("REQUEST_TIMEOUT", getEnv("REQUEST_TIMEOUT", "60s")); err != nil {
		return nil, err
	}
	if cfg.ReportTTL, err = parseDuration("REPORT_TTL", getEnv("REPORT_TTL", "168h")); err != nil {
		return nil, err
	}
	if cfg.Seed, err = parseUint("SEED", getEnv("SEED", "0")); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints. Call it after applying overrides.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidConfig, err)
	}
	return nil
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDuration parses a duration string
func parseDuration(key, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: invalid duration %q", apperrors.ErrInvalidConfig, key, s)
	}
	return d, nil
}

func parseInt(key, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: invalid integer %q", apperrors.ErrInvalidConfig, key, s)
	}
	return n, nil
}

func parseUint(key, s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: invalid unsigned integer %q", apperrors.ErrInvalidConfig, key, s)
	}
	return n, nil
}

func parseFloat(key, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: invalid number %q", apperrors.ErrInvalidConfig, key, s)
	}
	return f, nil
}

// ServerConfig holds configuration for the local mock API server
type ServerConfig struct {
	ServerPort string
	GinMode    string
}

// LoadServer reads the mock server configuration
func LoadServer() *ServerConfig {
	_ = godotenv.Load()

	return &ServerConfig{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
	}
}
