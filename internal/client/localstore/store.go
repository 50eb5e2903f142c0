// Package localstore provides the durable device-local key/value store that
// backs every entity collection. Values are opaque JSON blobs; one fixed key
// per collection.
package localstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
// Callers on the read path treat it the same as any other read failure:
// the value is simply absent.
var ErrNotFound = errors.New("not found")

// Store is the persistence substrate for the data layer.
//
// There is no transactional multi-key write: two Set calls are independent
// operations.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the value under key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error

	// RemoveMany deletes every listed key.
	RemoveMany(ctx context.Context, keys []string) error

	Close() error
}
