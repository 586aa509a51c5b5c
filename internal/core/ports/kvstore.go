package ports

import "context"

// KVStore is a minimal persisted key/value capability: Get/Set/Remove over
// named keys. Components never reach for ambient storage; they receive a
// KVStore so backends can be swapped for an in-memory fake in tests.
type KVStore interface {
	// Get returns the value stored under key, or domain.ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
