package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	RedisBackend  = "redis"
	MemoryBackend = "memory"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Cache is a typed key/value store with per-key TTL.
type Cache[V any] interface {
	// Get returns the value or ErrCacheMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key. Zero ttl means no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
}

// Config selects and tunes a backend.
type Config struct {
	Backend   string
	Prefix    string
	Redis     RedisOptions
	Janitor   time.Duration
	OpTimeout time.Duration
}

// New builds the backend named by cfg.Backend.
func New[V any](cfg Config) (Cache[V], error) {
	switch cfg.Backend {
	case RedisBackend:
		if cfg.Redis.OpTimeout == 0 {
			cfg.Redis.OpTimeout = cfg.OpTimeout
		}
		return NewRedisCache[V](cfg.Prefix, &cfg.Redis), nil
	case MemoryBackend, "":
		return NewMemoryCache[V](cfg.Janitor), nil
	default:
		return nil, fmt.Errorf("cache: unknown backend %q", cfg.Backend)
	}
}
