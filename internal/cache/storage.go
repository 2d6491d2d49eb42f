package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const limiterPrefix = "limiter:"

// LimiterStorage adapts the Redis client to fiber.Storage so rate-limit
// counters are shared between instances. Unlike Client it reports errors;
// the limiter needs to know when its state is gone.
type LimiterStorage struct {
	c *Client
}

// Storage returns a fiber.Storage, or nil when caching is disabled so the
// limiter falls back to its in-memory store.
func (c *Client) Storage() *LimiterStorage {
	if !c.Enabled() {
		return nil
	}
	return &LimiterStorage{c: c}
}

func (s *LimiterStorage) key(k string) string {
	return s.c.prefix + limiterPrefix + k
}

func (s *LimiterStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	val, err := s.c.client.Get(context.Background(), s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *LimiterStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	return s.c.client.Set(context.Background(), s.key(key), val, exp).Err()
}

func (s *LimiterStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	return s.c.client.Del(context.Background(), s.key(key)).Err()
}

// Reset removes every limiter key.
func (s *LimiterStorage) Reset() error {
	ctx := context.Background()
	iter := s.c.client.Scan(ctx, 0, s.c.prefix+limiterPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close is a no-op; the owning Client closes the connection.
func (s *LimiterStorage) Close() error {
	return nil
}
