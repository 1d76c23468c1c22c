package ports

import "context"

// IdempotencyStore remembers which event an Idempotency-Key produced.
//
// A creation first calls Reserve. Only the caller that wins the reservation
// creates the event and then calls Remember, or Release when creation fails.
type IdempotencyStore interface {
	// Reserve claims key. When the key is already claimed, reserved is false
	// and eventID is the recorded event, or empty while the claiming request
	// is still in flight.
	Reserve(ctx context.Context, key string) (eventID string, reserved bool, err error)
	// Remember records eventID under a key claimed by Reserve.
	Remember(ctx context.Context, key, eventID string) error
	// Release drops a reservation whose creation failed.
	Release(ctx context.Context, key string) error
}
