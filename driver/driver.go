// Package driver defines the interface for storage driver implementations.
// It provides a common contract for the memory, filesystem and S3 backends.
package driver

import (
	"context"
	"errors"

	"github.com/tarantool/go-kvns/kv"
)

// ErrNotFound is returned by Fetch when the key does not exist.
// The namespace facade always translates it to an absent value.
var ErrNotFound = errors.New("key not found")

// Driver is the interface that storage drivers must implement.
// A Driver is bound to a single namespace.
type Driver interface {
	// Fetch returns the entry stored under key, or ErrNotFound.
	Fetch(ctx context.Context, key string) (kv.Entry, error)

	// Store fully replaces the entry stored under key.
	Store(ctx context.Context, key string, entry kv.Entry) error

	// Remove deletes the entry stored under key.
	// Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// List returns up to limit keys with the given prefix, sorted ascending,
	// starting after startAfter. An empty startAfter starts from the beginning.
	List(ctx context.Context, prefix string, limit int, startAfter string) (kv.Page, error)
}

// Provider hosts many isolated namespaces on one backend instance.
type Provider interface {
	// Namespace returns the driver bound to the named namespace.
	Namespace(name string) Driver
}
