package taxconfig

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const enabledTypesKey = "taxtypes:enabled"

// Cache wraps Redis helpers for JSON payloads. A nil client disables caching.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetEnabled unmarshals the cached enabled configurations. It reports whether
// the key existed.
func (c *Cache) GetEnabled(ctx context.Context, dst *[]Config) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}
	data, err := c.client.Get(ctx, enabledTypesKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

// SetEnabled stores the enabled configurations with the configured TTL.
func (c *Cache) SetEnabled(ctx context.Context, configs []Config) error {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(configs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, enabledTypesKey, data, c.ttl).Err()
}

// Invalidate drops the cached enabled configurations after a write.
func (c *Cache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, enabledTypesKey).Err()
}
