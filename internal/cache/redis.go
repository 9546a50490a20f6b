// Package cache provides caching functionality using Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ReportKey holds the most recent run report.
	ReportKey = "audiocheck:report:last"
	// ReportListKey holds the newest reports, most recent first.
	ReportListKey = "audiocheck:reports"
)

// Redis wraps the Redis client.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a new Redis connection. uri may be host:port or a
// redis:// URL.
func NewRedis(ctx context.Context, uri string) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URI: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Println("Connected to Redis")

	return &Redis{client: client}, nil
}

func redisURL(uri string) string {
	if strings.HasPrefix(uri, "redis://") || strings.HasPrefix(uri, "rediss://") {
		return uri
	}
	return "redis://" + uri
}

// Close closes the Redis connection.
func (r *Redis) Close() {
	if err := r.client.Close(); err != nil {
		log.Printf("Error closing Redis connection: %v", err)
	}
	log.Println("Disconnected from Redis")
}

// Set stores a value in cache with TTL.
func (r *Redis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return r.client.Set(ctx, key, data, ttl).Err()
}

// Get retrieves a value from cache.
// Returns false if key doesn't exist.
func (r *Redis) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil // Key doesn't exist
		}
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal value: %w", err)
	}

	return true, nil
}

// PushCapped prepends value to the list at key, trims it to maxLen entries
// and refreshes its TTL in one transaction.
func (r *Redis) PushCapped(ctx context.Context, key string, value interface{}, maxLen int64, ttl time.Duration) error {
	if maxLen < 1 {
		return fmt.Errorf("invalid list cap %d", maxLen)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, data)
		pipe.LTrim(ctx, key, 0, maxLen-1)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

// Range returns the raw list entries at key from start to stop, newest first.
func (r *Redis) Range(ctx context.Context, key string, start, stop int64) ([][]byte, error) {
	values, err := r.client.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, err
	}

	out := make([][]byte, 0, len(values))
	for _, v := range values {
		out = append(out, []byte(v))
	}
	return out, nil
}

// RunKey generates a cache key for a single run's report.
func RunKey(runID string) string {
	return fmt.Sprintf("audiocheck:report:%s", runID)
}
