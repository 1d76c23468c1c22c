package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultIdempotencyTTL = 24 * time.Hour

	// pendingTTL bounds how long a crashed request can hold a key.
	pendingTTL = 30 * time.Second
	// pendingValue marks a reserved key; event ids are UUIDs so it cannot clash.
	pendingValue = "-"
)

// IdempotencyStore remembers the event created for an Idempotency-Key.
// Key format: <prefix>idem:<actor id>:<client key>
type IdempotencyStore struct {
	client *Client
	ttl    time.Duration
}

// Reserve claims key with SETNX. When another request already holds it, the
// recorded event id is returned, or "" while that request is still running.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (string, bool, error) {
	k := s.client.key("idem", key)

	ok, err := s.client.rdb.SetNX(ctx, k, pendingValue, pendingTTL).Result()
	if err != nil {
		return "", false, fmt.Errorf("idempotency reserve: %w", err)
	}
	if ok {
		return "", true, nil
	}

	id, err := s.client.rdb.Get(ctx, k).Result()
	if errors.Is(err, redis.Nil) {
		// The holder released or expired between SETNX and GET.
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("idempotency lookup: %w", err)
	}
	if id == pendingValue {
		return "", false, nil
	}
	return id, false, nil
}

// Remember records eventID under key (expires after the configured TTL).
func (s *IdempotencyStore) Remember(ctx context.Context, key, eventID string) error {
	return s.client.rdb.Set(ctx, s.client.key("idem", key), eventID, s.ttl).Err()
}

// Release deletes a reservation so the client can retry with the same key.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.rdb.Del(ctx, s.client.key("idem", key)).Err()
}
