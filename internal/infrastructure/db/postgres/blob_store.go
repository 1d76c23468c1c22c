package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/familyhub/calendar-hub/internal/core/domain"
)

const createStateTable = `
CREATE TABLE IF NOT EXISTS calendar_state (
	key        TEXT PRIMARY KEY,
	payload    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// BlobStore keeps each blob as one row of the calendar_state table.
type BlobStore struct {
	pool *pgxpool.Pool
}

// NewBlobStore creates the calendar_state table if needed and returns a store
// backed by pool.
func NewBlobStore(ctx context.Context, pool *pgxpool.Pool) (*BlobStore, error) {
	if _, err := pool.Exec(ctx, createStateTable); err != nil {
		return nil, fmt.Errorf("create calendar_state: %w", err)
	}
	return &BlobStore{pool: pool}, nil
}

// Get returns the payload stored under key.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx, `SELECT payload::text FROM calendar_state WHERE key = $1`, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select blob %s: %w", key, err)
	}
	return payload, nil
}

// Put upserts the row for key.
func (s *BlobStore) Put(ctx context.Context, key string, payload []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO calendar_state (key, payload, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		key, string(payload))
	if err != nil {
		return fmt.Errorf("upsert blob %s: %w", key, err)
	}
	return nil
}

// Ping checks that the database answers.
func (s *BlobStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
