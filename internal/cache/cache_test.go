package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
)

func TestListCache_NilClientIsMiss(t *testing.T) {
	c := NewListCache(nil)
	ctx := context.Background()

	var dest []string
	if c.Get(ctx, KeyCards, &dest) {
		t.Error("Expected a miss with a nil client")
	}

	// must not panic
	c.Set(ctx, KeyCards, []string{"a"})
	c.Invalidate(ctx, KeyCards)
}

// Any redis failure degrades to a miss; the store stays authoritative.
func TestListCache_UnreachableServerIsMiss(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := NewListCache(rdb)
	ctx := context.Background()

	var dest []string
	if c.Get(ctx, KeySections, &dest) {
		t.Error("Expected a miss when redis is unreachable")
	}
	c.Set(ctx, KeySections, []string{"a"})
	c.Invalidate(ctx, KeySections)
}
