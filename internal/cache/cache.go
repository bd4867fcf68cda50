// Package cache provides a small byte-oriented cache used for hot public
// reads (property detail). The Redis backend is optional at runtime; services
// treat a nil Store as cache-disabled.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned when a key is absent.
var ErrMiss = errors.New("cache miss")

// Store is the minimal cache surface services depend on.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
