// Package memory provides an in-process implementation of the storage driver
// interface. Entries live for the lifetime of the process.
package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/tarantool/go-kvns/driver"
	"github.com/tarantool/go-kvns/internal/page"
	"github.com/tarantool/go-kvns/kv"
)

// Store holds one map per namespace.
type Store struct {
	mu         sync.Mutex
	namespaces map[string]*Driver
}

var _ driver.Provider = &Store{} //nolint:exhaustruct

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		mu:         sync.Mutex{},
		namespaces: make(map[string]*Driver),
	}
}

// Namespace returns the driver for the named namespace, creating it on first use.
// Repeated calls with the same name share the same entries.
func (s *Store) Namespace(name string) driver.Driver {
	return s.namespace(name)
}

func (s *Store) namespace(name string) *Driver {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.namespaces[name]
	if !ok {
		ns = newDriver()
		s.namespaces[name] = ns
	}

	return ns
}

// Driver is a single in-memory namespace.
// The mutex only keeps the map consistent; it does not order concurrent writers.
type Driver struct {
	mu      sync.RWMutex
	entries map[string]kv.Entry
}

var _ driver.Driver = &Driver{} //nolint:exhaustruct

func newDriver() *Driver {
	return &Driver{
		mu:      sync.RWMutex{},
		entries: make(map[string]kv.Entry),
	}
}

// Fetch implements driver.Driver.
func (d *Driver) Fetch(_ context.Context, key string) (kv.Entry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	entry, ok := d.entries[key]
	if !ok {
		return kv.Entry{}, driver.ErrNotFound
	}

	return clone(entry), nil
}

// Store implements driver.Driver.
func (d *Driver) Store(_ context.Context, key string, entry kv.Entry) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.entries[key] = clone(entry)

	return nil
}

// Remove implements driver.Driver.
func (d *Driver) Remove(_ context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.entries, key)

	return nil
}

// List implements driver.Driver.
func (d *Driver) List(_ context.Context, prefix string, limit int, startAfter string) (kv.Page, error) {
	d.mu.RLock()
	metas := make([]kv.KeyMeta, 0, len(d.entries))

	for key, entry := range d.entries {
		meta := entry.Meta(key)
		meta.Metadata = bytes.Clone(meta.Metadata)
		metas = append(metas, meta)
	}
	d.mu.RUnlock()

	return page.Paginate(metas, prefix, limit, startAfter), nil
}

// Len returns the number of stored entries, expired ones included.
func (d *Driver) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.entries)
}

func clone(entry kv.Entry) kv.Entry {
	value := bytes.Clone(entry.Value)
	if value == nil {
		value = []byte{}
	}

	return kv.Entry{
		Value:      value,
		Expiration: entry.Expiration,
		Metadata:   bytes.Clone(entry.Metadata),
	}
}
