// Package cache is the read-through store for indicator lookups. Every
// entry carries its own TTL because indicators refresh at very different
// rates, from price series (a minute) to policy rates (a day).
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Cache stores encoded values with a per-entry TTL. Implementations must be
// safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// GetOrFetch returns the cached value for key or calls fetch and stores its
// result for ttl. Cache failures are logged and bypassed; fetch errors are
// returned and nothing is stored.
func GetOrFetch[T any](ctx context.Context, c Cache, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if c != nil {
		raw, ok, err := c.Get(ctx, key)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("key", key).Msg("cache read failed, fetching")
		case ok:
			var v T
			if err := json.Unmarshal(raw, &v); err == nil {
				return v, nil
			}
			log.Warn().Str("key", key).Msg("cache entry undecodable, fetching")
		}
	}

	v, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	if c != nil {
		raw, err := json.Marshal(v)
		if err != nil {
			return v, fmt.Errorf("encode cache value %s: %w", key, err)
		}
		if err := c.Set(ctx, key, raw, ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return v, nil
}
