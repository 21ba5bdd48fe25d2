package cards

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	cacheListKey    = "cards:list"
	cacheVersionKey = "cards:version"
)

// Cache keeps the card list in Redis behind a version counter. Mutations
// bump the version, which retires every previously written list key; the
// stale entries expire with their TTL. A nil cache or an unreachable
// Redis degrades to loading straight from the repository.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
}

// NewCache instantiates the cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) version(ctx context.Context) (int64, error) {
	ver, err := c.client.Get(ctx, cacheVersionKey).Int64()
	if err == redis.Nil {
		if err := c.client.Set(ctx, cacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	return ver, err
}

// FetchList returns the cached card list, populating it via loader on a
// miss. Concurrent misses on the same key collapse into one loader call;
// cache failures fall back to the loader instead of failing the request.
func (c *Cache) FetchList(ctx context.Context, loader func(context.Context) ([]Card, error)) ([]Card, error) {
	if c == nil || c.client == nil {
		return loader(ctx)
	}

	ver, err := c.version(ctx)
	if err != nil {
		return loader(ctx)
	}
	key := fmt.Sprintf("%s:%d", cacheListKey, ver)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var cached []Card
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		result, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		if raw, err := json.Marshal(result); err == nil {
			_ = c.client.Set(ctx, key, raw, c.ttl).Err()
		}
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Card), nil
}

// Bump invalidates the cached list after a mutation.
func (c *Cache) Bump(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Incr(ctx, cacheVersionKey).Err()
}
