// ABOUTME: Redis cache implementation using go-redis with ReJSON document storage
// ABOUTME: JSON values are stored as native documents, opaque values fall back to plain strings

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nitishm/go-rejson/v4"
	"github.com/redis/go-redis/v9"

	"insightink-api/pkg/config"
)

// ErrNotFound is returned when a key is missing.
var ErrNotFound = errors.New("key not found")

// RedisCache implements the Cache interface using Redis. Values that are
// valid JSON are stored through ReJSON so they stay queryable server-side;
// anything else (audio bytes) is stored as a plain string.
type RedisCache struct {
	client  *redis.Client
	handler *rejson.Handler
}

// NewRedisCache creates a new Redis cache instance and verifies connectivity.
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	// The handler keeps the context it is bound with for every later
	// command, so it must outlive this constructor.
	handler := rejson.NewReJSONHandler()
	handler.SetGoRedisClient(client)

	return &RedisCache{client: client, handler: handler}, nil
}

// Get retrieves a value from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	if val, err := c.handler.JSONGet(key, "."); err == nil {
		if b, ok := val.([]byte); ok {
			return b, nil
		}
	}

	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

// Set stores a value in Redis with the given TTL. A zero TTL stores the
// value indefinitely.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if json.Valid(value) {
		if _, err := c.handler.JSONSet(key, ".", json.RawMessage(value)); err != nil {
			return err
		}
	} else {
		if err := c.client.Set(ctx, key, value, 0).Err(); err != nil {
			return err
		}
	}

	if ttl > 0 {
		return c.client.Expire(ctx, key, ttl).Err()
	}
	return nil
}

// Delete removes a key from Redis.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close closes the underlying Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
