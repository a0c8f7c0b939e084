package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/creatorpulse/creatorpulse/pkg/config"
	"github.com/creatorpulse/creatorpulse/pkg/logging"
)

// ResolutionTTL bounds how long a cached handle resolution is trusted.
// Handles rarely change owners, a day keeps the upstream call count low.
const ResolutionTTL = 24 * time.Hour

// Cache wraps Redis client. A nil *Cache is a valid, disabled cache.
type Cache struct {
	client *redis.Client
}

// New creates a new Redis cache client
func New(cfg *config.RedisConfig) (*Cache, error) {
	if !cfg.Enabled {
		logging.GetLogger().Info("Redis cache disabled")
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logging.GetLogger().Info("Redis connection established")

	return &Cache{client: client}, nil
}

// NamespaceKey prefixes a key with the application namespace
func NamespaceKey(key string) string {
	return "pulse:" + key
}

// GetResolvedID returns a cached handle-to-ID resolution, or "" on miss.
func (c *Cache) GetResolvedID(ctx context.Context, platform, handle string) (string, error) {
	if c == nil || c.client == nil {
		return "", ErrCacheDisabled
	}
	id, err := c.client.Get(ctx, NamespaceKey("resolve:"+platform+":"+handle)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return id, err
}

// SetResolvedID caches a handle-to-ID resolution
func (c *Cache) SetResolvedID(ctx context.Context, platform, handle, id string) error {
	if c == nil || c.client == nil {
		return ErrCacheDisabled
	}
	return c.client.Set(ctx, NamespaceKey("resolve:"+platform+":"+handle), id, ResolutionTTL).Err()
}

// Delete removes a key from cache
func (c *Cache) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return ErrCacheDisabled
	}
	return c.client.Del(ctx, NamespaceKey(key)).Err()
}

// Close closes the Redis connection
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Health checks Redis health
func (c *Cache) Health(ctx context.Context) error {
	if c == nil || c.client == nil {
		return ErrCacheDisabled
	}
	return c.client.Ping(ctx).Err()
}

// ErrCacheDisabled is returned when cache operations are attempted but cache is disabled
var ErrCacheDisabled = fmt.Errorf("cache is disabled")
