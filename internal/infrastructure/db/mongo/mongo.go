package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultTimeout = 10 * time.Second

	// codeNamespaceExists is returned by create when the collection is already there.
	codeNamespaceExists = 48
)

// Config captures the settings for the household's MongoDB database.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect opens a client, verifies it with a ping and makes sure the
// calendar_state collection exists. It returns the client, for Disconnect,
// and the blob store over that collection.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *BlobStore, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	if err := ensureCollection(connectCtx, db, stateCollection); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, err
	}

	return client, NewBlobStore(db), nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string) error {
	err := db.CreateCollection(ctx, name)
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == codeNamespaceExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("mongo create %s: %w", name, err)
	}
	return nil
}
