package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunKey(t *testing.T) {
	tests := []struct {
		name     string
		runID    string
		expected string
	}{
		{"timestamp id", "20261016T101500Z", "audiocheck:report:20261016T101500Z"},
		{"with seed suffix", "20261016T101500Z-42", "audiocheck:report:20261016T101500Z-42"},
		{"empty string", "", "audiocheck:report:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RunKey(tt.runID))
		})
	}
}

func TestRunKeyDoesNotCollideWithLastReport(t *testing.T) {
	assert.NotEqual(t, ReportKey, RunKey("x"))
	assert.NotEqual(t, ReportListKey, RunKey("x"))
}

func TestRedisURL(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"host and port", "localhost:6379", "redis://localhost:6379"},
		{"with password", ":secret@cache:6379", "redis://:secret@cache:6379"},
		{"already a url", "redis://localhost:6379/2", "redis://localhost:6379/2"},
		{"tls url", "rediss://cache.example.com:6380", "rediss://cache.example.com:6380"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, redisURL(tt.uri))
		})
	}
}
