// Package redis implements the read-model name cache on go-redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLDisplayName bounds staleness of cached display names. Names are not
// claim state, so a few minutes of staleness is acceptable.
const TTLDisplayName = 5 * time.Minute

// NameCache implements queries.NameCache on a redis client. Keys are
// namespaced by service name: "{service}:{key}".
type NameCache struct {
	client      *redis.Client
	serviceName string
}

// NewNameCache creates a name cache backed by the redis instance at addr.
func NewNameCache(addr, serviceName string) *NameCache {
	return &NameCache{
		client:      redis.NewClient(&redis.Options{Addr: addr}),
		serviceName: serviceName,
	}
}

// Get returns the cached value for key and whether it was present.
func (c *NameCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, c.namespaced(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key with the display-name TTL.
func (c *NameCache) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, c.namespaced(key), value, TTLDisplayName).Err()
}

// Close releases the underlying client.
func (c *NameCache) Close() error {
	return c.client.Close()
}

func (c *NameCache) namespaced(key string) string {
	return fmt.Sprintf("%s:%s", c.serviceName, key)
}
