package cache

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache stores short-lived string values such as rendered dashboards.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// New connects to Redis when url is set and falls back to an in-process cache
// when it is empty or unreachable.
func New(url string, log *zap.Logger) Cache {
	if log == nil {
		log = zap.NewNop()
	}
	if url != "" {
		c, err := NewRedisCache(url, log)
		if err == nil {
			return c
		}
		log.Warn("redis unavailable, using local cache", zap.Error(err))
	}
	return NewLocalCache(time.Minute, log)
}
