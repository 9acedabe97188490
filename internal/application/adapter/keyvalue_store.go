package adapter

import "context"

// KeyValueStore defines the scoped persistent key-value contract backing the
// home and holiday record families. Values are JSON-serialized arrays, one
// key per record collection per owner ("homes_<ownerID>" and so on).
type KeyValueStore interface {
	// Get retrieves the value stored under key. The second return value is
	// false when the key does not exist.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
