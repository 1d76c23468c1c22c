package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/familyhub/calendar-hub/internal/core/ports"
	"github.com/familyhub/calendar-hub/internal/infrastructure/db/file"
	"github.com/familyhub/calendar-hub/internal/infrastructure/db/mongo"
	"github.com/familyhub/calendar-hub/internal/infrastructure/db/postgres"
	"github.com/familyhub/calendar-hub/internal/infrastructure/db/redis"
	"github.com/familyhub/calendar-hub/internal/pkg/config"
)

type blobBackend interface {
	ports.BlobStore
	ports.Pinger
}

// storage holds the opened persistence backends and how to release them.
type storage struct {
	blobs       blobBackend
	idempotency ports.IdempotencyStore
	readiness   map[string]ports.Pinger
	closers     []func()
}

func (s *storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// openStorage connects the configured blob backend. Redis, when configured,
// additionally backs Idempotency-Key handling; an unreachable Redis only
// disables that feature unless it is also the blob backend.
func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	st := &storage{readiness: make(map[string]ports.Pinger)}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{
			Addr:      cfg.Redis.Addr,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		})
		switch {
		case err != nil && cfg.Storage.Backend == config.StorageRedis:
			return nil, err
		case err != nil:
			log.Warn().Err(err).Msg("redis unavailable, idempotency keys disabled")
		default:
			rdb = client
			st.closers = append(st.closers, func() { _ = client.Close() })
			st.idempotency = client.Idempotency(cfg.Redis.IdempotencyTTL)
			st.readiness["redis"] = client
		}
	}

	switch cfg.Storage.Backend {
	case config.StorageFile:
		dir, err := filepath.Abs(cfg.Storage.DataDir)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("data dir: %w", err)
		}
		blobs, err := file.NewBlobStore(dir)
		if err != nil {
			st.Close()
			return nil, err
		}
		st.blobs = blobs
		log.Info().Str("dir", dir).Msg("using file storage")

	case config.StorageMongo:
		client, blobs, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			st.Close()
			return nil, err
		}
		st.closers = append(st.closers, func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(dctx)
		})
		st.blobs = blobs
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo storage")

	case config.StorageRedis:
		st.blobs = rdb.Blobs()
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis storage")

	case config.StoragePostgres:
		pool, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
		if err != nil {
			st.Close()
			return nil, err
		}
		st.closers = append(st.closers, pool.Close)
		blobs, err := postgres.NewBlobStore(ctx, pool)
		if err != nil {
			st.Close()
			return nil, err
		}
		st.blobs = blobs
		log.Info().Msg("using postgres storage")

	default:
		st.Close()
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	st.readiness["storage"] = st.blobs
	return st, nil
}
