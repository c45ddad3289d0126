package database

import (
	"context"
	"errors"
)

// ErrInvalidKey is returned for keys a backend cannot store
var ErrInvalidKey = errors.New("invalid key")

// KeyValueStore is a string-keyed persistence layer holding whole values.
// There are no partial updates: Set replaces the value under key.
type KeyValueStore interface {
	// Get returns the value under key; ok is false when the key is absent
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Delete removes key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources
	Close() error
}

// Watcher is implemented by backends that can report changes made by
// another process. Each received value is the key that changed.
type Watcher interface {
	Watch(ctx context.Context) (<-chan string, error)
}
