package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	client     *redis.Client
	clientOnce sync.Once
	clientErr  error
)

// Client returns the shared Redis client, or nil when Redis is not
// configured or the connection failed. Callers must handle nil.
func Client() *redis.Client {
	return client
}

// Initialize connects the shared client once at startup. Safe for
// concurrent calls; only the first one does work.
func Initialize(url string) error {
	clientOnce.Do(func() {
		if url == "" {
			clientErr = errors.New("redis: REDIS_URL not configured")
			return
		}

		opts, err := redis.ParseURL(url)
		if err != nil {
			clientErr = fmt.Errorf("redis: invalid URL: %w", err)
			return
		}
		opts.DialTimeout = 5 * time.Second
		opts.ReadTimeout = 3 * time.Second
		opts.WriteTimeout = 3 * time.Second

		c := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Ping(ctx).Err(); err != nil {
			clientErr = fmt.Errorf("redis: ping failed: %w", err)
			_ = c.Close()
			return
		}

		client = c
	})
	return clientErr
}

// Close releases the shared client. Used on shutdown.
func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
