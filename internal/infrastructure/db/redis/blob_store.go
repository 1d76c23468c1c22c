package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/familyhub/calendar-hub/internal/core/domain"
)

// BlobStore keeps each blob as a plain string value.
// Key format: <prefix><blob name>
type BlobStore struct {
	client *Client
}

// Get returns the payload stored under key.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.rdb.Get(ctx, s.client.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get blob %s: %w", key, err)
	}
	return b, nil
}

// Put replaces the value stored under key. Blobs never expire.
func (s *BlobStore) Put(ctx context.Context, key string, payload []byte) error {
	if err := s.client.rdb.Set(ctx, s.client.key(key), payload, 0).Err(); err != nil {
		return fmt.Errorf("set blob %s: %w", key, err)
	}
	return nil
}

// Ping checks that the server answers.
func (s *BlobStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}
