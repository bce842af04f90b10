package redis

import (
	"time"

	"github.com/kbukum/xduce/validation"
)

// Config holds Redis connection and list sink configuration.
type Config struct {
	// Addr is the Redis server address (host:port).
	Addr string `mapstructure:"addr"`

	// Password is the Redis server password.
	Password string `mapstructure:"password"`

	// DB is the Redis database number.
	DB int `mapstructure:"db"`

	// PoolSize is the maximum number of socket connections.
	PoolSize int `mapstructure:"pool_size"`

	// MinIdleConns is the minimum number of idle connections.
	MinIdleConns int `mapstructure:"min_idle_conns"`

	// MaxRetries is the number of retries go-redis performs per command.
	MaxRetries int `mapstructure:"max_retries"`

	// DialTimeout is the timeout for establishing new connections (e.g. "5s").
	DialTimeout string `mapstructure:"dial_timeout"`

	// ReadTimeout is the timeout for socket reads (e.g. "3s").
	ReadTimeout string `mapstructure:"read_timeout"`

	// WriteTimeout is the timeout for socket writes (e.g. "3s").
	WriteTimeout string `mapstructure:"write_timeout"`

	// BatchSize is the number of items sent per RPUSH when a ListSink flushes.
	BatchSize int `mapstructure:"batch_size"`

	// PageSize is the number of items fetched per LRANGE by a ListIterator.
	PageSize int `mapstructure:"page_size"`

	// FlushAttempts bounds how often a failed batch is pushed again.
	FlushAttempts int `mapstructure:"flush_attempts"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Addr == "" {
		c.Addr = "localhost:6379"
	}
	if c.PoolSize <= 0 {
		c.PoolSize = 10
	}
	if c.MinIdleConns <= 0 {
		c.MinIdleConns = 2
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.DialTimeout == "" {
		c.DialTimeout = "5s"
	}
	if c.ReadTimeout == "" {
		c.ReadTimeout = "3s"
	}
	if c.WriteTimeout == "" {
		c.WriteTimeout = "3s"
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 500
	}
	if c.PageSize <= 0 {
		c.PageSize = 1000
	}
	if c.FlushAttempts <= 0 {
		c.FlushAttempts = 3
	}
}

// Validate checks that required fields are present and parseable.
func (c *Config) Validate() error {
	v := validation.New().At("redis")
	v.Required("addr", c.Addr).
		Min("pool_size", c.PoolSize, 1).
		Range("min_idle_conns", c.MinIdleConns, 0, c.PoolSize).
		Min("db", c.DB, 0).
		Min("batch_size", c.BatchSize, 1).
		Min("page_size", c.PageSize, 1).
		Min("flush_attempts", c.FlushAttempts, 1)
	for _, d := range []struct{ field, value string }{
		{"dial_timeout", c.DialTimeout},
		{"read_timeout", c.ReadTimeout},
		{"write_timeout", c.WriteTimeout},
	} {
		_, err := time.ParseDuration(d.value)
		v.Custom(err == nil, d.field, "must be a duration such as 3s")
	}
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (c *Config) durations() (dial, read, write time.Duration) {
	dial, _ = time.ParseDuration(c.DialTimeout)
	read, _ = time.ParseDuration(c.ReadTimeout)
	write, _ = time.ParseDuration(c.WriteTimeout)
	return dial, read, write
}
