// Package service defines interfaces for external collaborators consumed by
// the use case layer.
package service

import (
	"context"
	"time"

	"storefront/internal/errors"
)

// ErrCacheMiss is returned by Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Cache is the best-effort read-through cache collaborator. Every call site
// treats failures as advisory: errors are logged and swallowed at the
// boundary and must never fail or delay the surrounding request.
type Cache interface {
	// Get returns the cached payload for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// SetWithTTL stores a payload under key for the given duration.
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// DeleteByPrefix removes every key matching the given prefix.
	DeleteByPrefix(ctx context.Context, prefix string) error
}
