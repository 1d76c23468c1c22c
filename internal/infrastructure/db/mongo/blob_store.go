package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/familyhub/calendar-hub/internal/core/domain"
)

const stateCollection = "calendar_state"

// BlobStore keeps each blob as one document of the calendar_state collection,
// keyed by the blob name.
type BlobStore struct {
	coll *mongo.Collection
}

func NewBlobStore(db *mongo.Database) *BlobStore {
	return &BlobStore{coll: db.Collection(stateCollection)}
}

type stateDocument struct {
	Key       string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Get returns the payload stored under key.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc stateDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("find blob %s: %w", key, err)
	}
	return []byte(doc.Payload), nil
}

// Put upserts the document for key.
func (s *BlobStore) Put(ctx context.Context, key string, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := stateDocument{Key: key, Payload: string(payload), UpdatedAt: time.Now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert blob %s: %w", key, err)
	}
	return nil
}

// Ping checks that the database answers.
func (s *BlobStore) Ping(ctx context.Context) error {
	return s.coll.Database().RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
