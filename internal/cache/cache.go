// Package cache provides a best-effort read-through cache for the public
// list endpoints. The store stays the source of truth: any Redis failure
// is treated as a miss, so the site keeps serving when the cache is down.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("cache")

// Keys for the cached list endpoints.
const (
	KeyCards    = "list:cards"
	KeyResults  = "list:results"
	KeySections = "list:sections"
)

const defaultTTL = 5 * time.Minute

// ListCache caches JSON-encoded list responses in Redis. A nil receiver
// or nil client disables caching entirely.
type ListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewListCache creates a ListCache over the given client, which may be
// nil to run uncached.
func NewListCache(rdb *redis.Client) *ListCache {
	return &ListCache{rdb: rdb, ttl: defaultTTL}
}

// Get unmarshals the cached value for key into dest, reporting whether a
// usable entry was found.
func (c *ListCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	ctx, span := tracer.Start(ctx, "ListCache.Get")
	defer span.End()

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Debug("cache get failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		slog.Debug("cache entry unreadable", "key", key, "error", err)
		return false
	}
	return true
}

// Set stores a JSON-encoded value under key. Failures are logged and
// dropped.
func (c *ListCache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.rdb == nil {
		return
	}
	ctx, span := tracer.Start(ctx, "ListCache.Set")
	defer span.End()

	data, err := json.Marshal(value)
	if err != nil {
		slog.Debug("cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Debug("cache set failed", "key", key, "error", err)
	}
}

// Invalidate drops the cached entry for key after a mutation.
func (c *ListCache) Invalidate(ctx context.Context, key string) {
	if c == nil || c.rdb == nil {
		return
	}
	ctx, span := tracer.Start(ctx, "ListCache.Invalidate")
	defer span.End()

	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		slog.Debug("cache invalidate failed", "key", key, "error", err)
	}
}
