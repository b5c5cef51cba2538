package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client *redis.Client
}

// NewRedisCache connects to redis and returns the cache plus a close func.
func NewRedisCache(ctx context.Context, addr string, db int, logger *slog.Logger) (Cache, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := client.Ping(pingCtx).Result(); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	logger.Info("Connected to redis", slog.String("addr", addr), slog.Int("db", db))

	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Error("Error closing redis connection", slog.String("error", err.Error()))
		}
	}
	return &redisCache{client: client}, closeFn, nil
}

func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return value, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value string, expiry time.Duration) error {
	return c.client.Set(ctx, key, value, expiry).Err()
}

func (c *redisCache) Remove(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
