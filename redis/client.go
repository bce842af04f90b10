package redis

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"

	goredis "github.com/redis/go-redis/v9"

	apperrors "github.com/kbukum/xduce/errors"
	"github.com/kbukum/xduce/logger"
)

// Client wraps a go-redis client with xduce logging and error codes.
type Client struct {
	rdb    *goredis.Client
	log    *logger.Logger
	cfg    Config
	closed bool
	mu     sync.Mutex
}

// New creates a new Redis client with the given configuration and logger.
// No connection is made until the first command; use Ping to check reachability.
func New(cfg Config, log *logger.Logger) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("redis config: %w", err)
	}

	dial, read, write := cfg.durations()
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  dial,
		ReadTimeout:  read,
		WriteTimeout: write,
	})

	log = log.WithComponent("redis")
	log.Info("Redis client created", map[string]interface{}{
		"addr":      cfg.Addr,
		"db":        cfg.DB,
		"pool_size": cfg.PoolSize,
	})

	return &Client{rdb: rdb, log: log, cfg: cfg}, nil
}

// Ping verifies the Redis connection is alive.
func (c *Client) Ping(ctx context.Context) error {
	pong, err := c.rdb.Ping(ctx).Result()
	if err != nil {
		return apperrors.ConnectionFailed("redis").WithCause(err).WithDetail("addr", c.cfg.Addr)
	}
	if pong != "PONG" {
		return apperrors.ConnectionFailed("redis").WithDetail("response", pong)
	}
	return nil
}

// ListValues takes an LRANGE snapshot of the list at key and returns it as a
// range. A missing key yields an empty range.
func (c *Client) ListValues(ctx context.Context, key string) (iter.Seq[string], error) {
	items, err := c.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, apperrors.SourceFailed(listName(key), err)
	}
	c.log.Debug("Read list snapshot", logger.Fields("key", key, "items", len(items)))
	return slices.Values(items), nil
}

// Close closes the Redis connection. Safe to call multiple times.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.log.Info("Closing Redis connection")
	c.closed = true
	return c.rdb.Close()
}

// Unwrap returns the underlying go-redis client for advanced operations.
func (c *Client) Unwrap() *goredis.Client {
	return c.rdb
}

func listName(key string) string {
	return "redis:" + key
}
