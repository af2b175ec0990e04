package kvstore

import "context"

// KeyValueStore defines durable storage of serialized collections under
// fixed keys. It is the persistence contract shared by every backend;
// callers own the read-modify-write cycle.
type KeyValueStore interface {
	// Get retrieves the raw value stored under key. The second return
	// value reports whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set fully overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Close releases the underlying connection, if any.
	Close(ctx context.Context) error
}
