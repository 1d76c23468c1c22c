// Package redis persists household blobs and Idempotency-Key reservations in
// Redis. Every key the service writes lives under one configurable prefix so
// several households can share a server.
package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for the household's Redis connection.
type Config struct {
	Addr string
	DB   int
	// KeyPrefix is prepended to every key, e.g. "calendar:".
	KeyPrefix string
	Timeout   time.Duration
}

// Client is a Redis connection scoped to the household key prefix.
type Client struct {
	rdb    *redis.Client
	prefix string
}

// Connect opens the connection and validates it with a ping. A default
// timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return &Client{rdb: rdb, prefix: cfg.KeyPrefix}, nil
}

// Blobs returns the blob store backed by this connection.
func (c *Client) Blobs() *BlobStore {
	return &BlobStore{client: c}
}

// Idempotency returns the Idempotency-Key store backed by this connection.
// Recorded keys expire after ttl.
func (c *Client) Idempotency(ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyStore{client: c, ttl: ttl}
}

// Ping checks that the server answers.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// key joins parts with ":" under the configured prefix.
func (c *Client) key(parts ...string) string {
	return c.prefix + strings.Join(parts, ":")
}
