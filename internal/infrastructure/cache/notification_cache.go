package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/p2p/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

const unreadCountTTL = 5 * time.Minute

// RedisNotificationCache caches the per-staff unread notification count in
// Redis so the badge counter does not hit the database on every poll.
type RedisNotificationCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisClient creates a Redis client from configuration and verifies the
// connection.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisNotificationCache creates a cache over an existing Redis client.
func NewRedisNotificationCache(client *redis.Client) *RedisNotificationCache {
	return &RedisNotificationCache{
		client:    client,
		keyPrefix: "notification:unread:",
	}
}

// GetUnreadCount returns the cached unread count. The second return value is
// false on a cache miss.
func (c *RedisNotificationCache) GetUnreadCount(ctx context.Context, staffCode string) (int, bool, error) {
	val, err := c.client.Get(ctx, c.keyPrefix+staffCode).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get unread count: %w", err)
	}
	count, err := strconv.Atoi(val)
	if err != nil {
		// A corrupt entry is treated as a miss so the caller refills it.
		return 0, false, nil
	}
	return count, true, nil
}

// SetUnreadCount stores the unread count with a short TTL.
func (c *RedisNotificationCache) SetUnreadCount(ctx context.Context, staffCode string, count int) error {
	if err := c.client.Set(ctx, c.keyPrefix+staffCode, count, unreadCountTTL).Err(); err != nil {
		return fmt.Errorf("set unread count: %w", err)
	}
	return nil
}

// InvalidateUnreadCount drops the cached count after a read-state change.
func (c *RedisNotificationCache) InvalidateUnreadCount(ctx context.Context, staffCode string) error {
	if err := c.client.Del(ctx, c.keyPrefix+staffCode).Err(); err != nil {
		return fmt.Errorf("invalidate unread count: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client.
func (c *RedisNotificationCache) Close() error {
	return c.client.Close()
}
