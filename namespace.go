package kvns

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-kvns/driver"
	"github.com/tarantool/go-kvns/internal/options"
	"github.com/tarantool/go-kvns/kv"
	"github.com/tarantool/go-kvns/marshaller"
)

// Namespace is an isolated key-value collection backed by a driver.
//
// Expired entries are never returned: they are deleted by the first Get or
// List that encounters them. Concurrent writers to the same key race with
// last-writer-wins semantics.
type Namespace struct {
	driver driver.Driver
	clock  Clock
	logger zerolog.Logger
	codec  marshaller.JSONMarshaller
}

// New creates a namespace over drv.
// Optional Option parameters replace the clock and the logger.
func New(drv driver.Driver, opts ...Option) *Namespace {
	cfg := options.Apply(namespaceOptions{
		clock:  SystemClock{},
		logger: zerolog.Nop(),
	}, opts)

	return &Namespace{
		driver: drv,
		clock:  cfg.clock,
		logger: cfg.logger,
		codec:  marshaller.NewJSONMarshaller(),
	}
}

// Get returns the value stored under key presented as typ, or nil when the
// key is missing or expired.
func (n *Namespace) Get(ctx context.Context, key string, typ Type) (any, error) {
	result, err := n.GetWithMetadata(ctx, key, typ)
	if err != nil {
		return nil, err
	}

	return result.Value, nil
}

// GetWithMetadata returns the value stored under key presented as typ along
// with its metadata. Both are nil when the key is missing or expired.
//
// TypeText yields a string, TypeJSON a decoded JSON value and TypeArrayBuffer
// a []byte. TypeStream and unknown types fail with ErrUnsupportedType.
// Numbers in JSON values and metadata decode as json.Number.
func (n *Namespace) GetWithMetadata(ctx context.Context, key string, typ Type) (ValueWithMetadata, error) {
	typ, err := resolveType(typ)
	if err != nil {
		return ValueWithMetadata{}, err
	}

	entry, err := n.driver.Fetch(ctx, key)
	switch {
	case errors.Is(err, driver.ErrNotFound):
		return ValueWithMetadata{}, nil
	case err != nil:
		return ValueWithMetadata{}, fmt.Errorf("failed to get key %q: %w", key, err)
	}

	if entry.ExpiredAt(n.clock.Now()) {
		return ValueWithMetadata{}, n.expire(ctx, key)
	}

	value, err := n.present(entry.Value, typ)
	if err != nil {
		return ValueWithMetadata{}, fmt.Errorf("failed to decode value of %q: %w", key, err)
	}

	metadata, err := n.codec.Decode(entry.Metadata)
	if err != nil {
		return ValueWithMetadata{}, fmt.Errorf("failed to decode metadata of %q: %w", key, err)
	}

	return ValueWithMetadata{Value: value, Metadata: metadata}, nil
}

// Put fully replaces the entry stored under key.
// Expiration and metadata not supplied in opts are reset.
func (n *Namespace) Put(ctx context.Context, key string, value []byte, opts ...PutOption) error {
	cfg := options.Apply(putOptions{
		expiration: option.None[int64](),
		ttl:        option.None[int64](),
		metadata:   nil,
	}, opts)

	metadata, err := n.codec.Raw(cfg.metadata)
	if err != nil {
		return fmt.Errorf("failed to encode metadata of %q: %w", key, err)
	}

	stored := bytes.Clone(value)
	if stored == nil {
		stored = []byte{}
	}

	entry := kv.Entry{
		Value:      stored,
		Expiration: cfg.expirationAt(n.clock.Now()),
		Metadata:   metadata,
	}

	if err := n.driver.Store(ctx, key, entry); err != nil {
		return fmt.Errorf("failed to put key %q: %w", key, err)
	}

	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (n *Namespace) Delete(ctx context.Context, key string) error {
	if err := n.driver.Remove(ctx, key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}

	return nil
}

// List returns one page of keys in ascending order.
// Options:
//   - WithPrefix: only keys starting with the prefix
//   - WithLimit: page size, 1000 by default, must be positive
//   - WithCursor: resume after the page that returned the cursor
//
// Expired keys are left out of the page and deleted before List returns,
// so a page may hold fewer keys than the limit.
func (n *Namespace) List(ctx context.Context, opts ...ListOption) (ListResult, error) {
	cfg := options.Apply(listOptions{
		prefix: "",
		limit:  option.None[int](),
		cursor: "",
	}, opts)

	limit := cfg.limit.UnwrapOr(DefaultListLimit)
	if limit <= 0 {
		return ListResult{}, errValidation("limit", "must be > 0")
	}

	startAfter, err := decodeCursor(cfg.cursor)
	if err != nil {
		return ListResult{}, err
	}

	page, err := n.driver.List(ctx, cfg.prefix, limit, startAfter)
	if err != nil {
		return ListResult{}, fmt.Errorf("failed to list keys: %w", err)
	}

	now := n.clock.Now()
	keys := make([]ListKey, 0, len(page.Entries))

	var expired []string

	for _, meta := range page.Entries {
		if meta.ExpiredAt(now) {
			expired = append(expired, meta.Key)
			continue
		}

		key, err := n.listKey(meta)
		if err != nil {
			return ListResult{}, err
		}

		keys = append(keys, key)
	}

	for _, key := range expired {
		if err := n.expire(ctx, key); err != nil {
			return ListResult{}, err
		}
	}

	return ListResult{
		Keys:         keys,
		ListComplete: page.Next == "",
		Cursor:       encodeCursor(page.Next),
	}, nil
}

func (n *Namespace) listKey(meta kv.KeyMeta) (ListKey, error) {
	key := ListKey{Name: meta.Key, Expiration: nil, Metadata: nil}

	if meta.Expiration != kv.NoExpiration {
		expiration := meta.Expiration
		key.Expiration = &expiration
	}

	metadata, err := n.codec.Decode(meta.Metadata)
	if err != nil {
		return ListKey{}, fmt.Errorf("failed to decode metadata of %q: %w", meta.Key, err)
	}

	key.Metadata = metadata

	return key, nil
}

// expire deletes a key found expired by a read.
func (n *Namespace) expire(ctx context.Context, key string) error {
	if err := n.driver.Remove(ctx, key); err != nil {
		return fmt.Errorf("failed to delete expired key %q: %w", key, err)
	}

	n.logger.Debug().Str("key", key).Msg("expired key deleted")

	return nil
}

func (n *Namespace) present(value []byte, typ Type) (any, error) {
	switch typ {
	case TypeJSON:
		var out any
		if err := n.codec.Unmarshal(value, &out); err != nil {
			return nil, err
		}

		return out, nil
	case TypeArrayBuffer:
		if value == nil {
			return []byte{}, nil
		}

		return value, nil
	default:
		return string(value), nil
	}
}

func resolveType(typ Type) (Type, error) {
	switch typ {
	case "", TypeText:
		return TypeText, nil
	case TypeJSON, TypeArrayBuffer:
		return typ, nil
	default:
		return "", errUnsupportedType(typ)
	}
}
