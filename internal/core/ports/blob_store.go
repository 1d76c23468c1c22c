package ports

import "context"

// Blob keys of the persisted household state. Each blob holds a whole
// collection and is overwritten on every write.
const (
	BlobUsers       = "familyCalendarUsers"
	BlobCurrentUser = "familyCalendarCurrentUser"
	BlobEvents      = "familyCalendarEvents"
)

// BlobStore reads and writes named JSON blobs.
type BlobStore interface {
	// Get returns the payload stored under key, or domain.ErrSnapshotNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put replaces the payload stored under key.
	Put(ctx context.Context, key string, payload []byte) error
}

// Pinger is implemented by backends that can report their reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
