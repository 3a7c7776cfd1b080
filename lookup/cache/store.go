package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned when the key is not cached.
var ErrMiss = errors.New("cache miss")

// Store is the key value storage behind the caches.
// *redis.RedisClient implements it.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
