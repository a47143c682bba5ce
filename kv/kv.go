// Package kv provides the data structures exchanged between the namespace
// facade and storage drivers.
package kv

import (
	"encoding/json"
)

// NoExpiration marks an entry that never expires.
const NoExpiration int64 = -1

// Entry is the stored value of a single key.
type Entry struct {
	// Value is the raw stored value.
	Value []byte
	// Expiration is the expiration time in seconds since the UNIX epoch,
	// or NoExpiration.
	Expiration int64
	// Metadata is the JSON encoding of the user metadata, nil for none.
	Metadata json.RawMessage
}

// Meta returns the listing view of the entry under the given key.
func (e Entry) Meta(key string) KeyMeta {
	return KeyMeta{
		Key:        key,
		Expiration: e.Expiration,
		Metadata:   e.Metadata,
	}
}

// HasMeta reports whether the entry carries an expiration or metadata.
func (e Entry) HasMeta() bool {
	return e.Expiration != NoExpiration || e.Metadata != nil
}

// ExpiredAt reports whether the entry is expired at the given timestamp.
// An entry is still live at the exact second of its expiration.
func (e Entry) ExpiredAt(timestamp int64) bool {
	return e.Expiration != NoExpiration && e.Expiration < timestamp
}

// KeyMeta describes a listed key without its value.
type KeyMeta struct {
	Key        string
	Expiration int64
	Metadata   json.RawMessage
}

// ExpiredAt reports whether the listed key is expired at the given timestamp.
func (m KeyMeta) ExpiredAt(timestamp int64) bool {
	return m.Expiration != NoExpiration && m.Expiration < timestamp
}

// Page is a single page of a listing.
type Page struct {
	// Entries are sorted ascending by key.
	Entries []KeyMeta
	// Next is the key to resume after, empty when the listing is exhausted.
	Next string
}
