package store

import (
	"context"
	"errors"
)

// Errors returned by backends and the store.
var (
	// ErrKeyNotFound is returned by Backend.Get when nothing is stored under a key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrUnsupportedBackend is returned by OpenBackend for an unknown kind.
	ErrUnsupportedBackend = errors.New("unsupported backend")
)

// Backend is durable key-value storage for the serialized collections.
// Each key holds one JSON document that is replaced wholesale on write.
type Backend interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the value stored under key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists the stored keys in lexical order.
	Keys(ctx context.Context) ([]string, error)

	// Close releases any resources held by the backend, such as
	// database connections.
	Close() error
}
