package report

import (
	"context"
	"fmt"
	"time"

	"audiocheck/internal/cache"
)

// DefaultHistory is how many reports the history list keeps.
const DefaultHistory = 50

// RedisSink keeps the latest report, a per-run copy and a capped history.
type RedisSink struct {
	cache   cache.Cache
	ttl     time.Duration
	history int64
}

// NewRedisSink creates a RedisSink. Stored keys expire after ttl.
func NewRedisSink(c cache.Cache, ttl time.Duration) *RedisSink {
	return &RedisSink{cache: c, ttl: ttl, history: DefaultHistory}
}

func (s *RedisSink) Name() string { return "redis" }

// Write stores r.
func (s *RedisSink) Write(ctx context.Context, r *Report) error {
	if err := s.cache.Set(ctx, cache.ReportKey, r, s.ttl); err != nil {
		return fmt.Errorf("failed to store latest report: %w", err)
	}
	if err := s.cache.Set(ctx, cache.RunKey(r.ID), r, s.ttl); err != nil {
		return fmt.Errorf("failed to store report %s: %w", r.ID, err)
	}
	if err := s.cache.PushCapped(ctx, cache.ReportListKey, r, s.history, s.ttl); err != nil {
		return fmt.Errorf("failed to append report history: %w", err)
	}
	return nil
}
