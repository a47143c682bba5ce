// Package dump serializes whole namespaces as msgpack documents.
package dump

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	kvns "github.com/tarantool/go-kvns"
	"github.com/tarantool/go-kvns/hasher"
	"github.com/tarantool/go-kvns/kv"
	"github.com/tarantool/go-kvns/marshaller"
)

// Version is the current document format version.
const Version = 1

// ErrUnsupportedVersion is returned when reading a document of an unknown format.
var ErrUnsupportedVersion = errors.New("unsupported dump version")

// ErrChecksumMismatch is returned when a document's records do not match its checksum.
var ErrChecksumMismatch = errors.New("dump checksum mismatch")

// Record is a single live key.
type Record struct {
	Key        string `msgpack:"key"`
	Value      []byte `msgpack:"value"`
	Expiration int64  `msgpack:"expiration"`

	// Metadata is the JSON encoding of the key's metadata, nil for none.
	Metadata []byte `msgpack:"metadata"`
}

// Dump is the content of one namespace.
type Dump struct {
	Version   int      `msgpack:"version"`
	Namespace string   `msgpack:"namespace"`
	Records   []Record `msgpack:"records"`
}

// Collect reads every live key of ns in ascending order.
// Keys deleted while the dump is running are skipped.
func Collect(ctx context.Context, ns *kvns.Namespace, name string) (Dump, error) {
	codec := marshaller.NewJSONMarshaller()
	out := Dump{Version: Version, Namespace: name, Records: []Record{}}
	cursor := ""

	for {
		page, err := ns.List(ctx, kvns.WithLimit(kvns.DefaultListLimit), kvns.WithCursor(cursor))
		if err != nil {
			return Dump{}, err
		}

		for _, key := range page.Keys {
			result, err := ns.GetWithMetadata(ctx, key.Name, kvns.TypeArrayBuffer)
			if err != nil {
				return Dump{}, err
			}

			value, ok := result.Value.([]byte)
			if !ok {
				continue
			}

			metadata, err := codec.Raw(result.Metadata)
			if err != nil {
				return Dump{}, fmt.Errorf("failed to encode metadata of %q: %w", key.Name, err)
			}

			expiration := kv.NoExpiration
			if key.Expiration != nil {
				expiration = *key.Expiration
			}

			out.Records = append(out.Records, Record{
				Key:        key.Name,
				Value:      value,
				Expiration: expiration,
				Metadata:   metadata,
			})
		}

		if page.ListComplete {
			return out, nil
		}

		cursor = page.Cursor
	}
}

// Restore puts every record of d into ns, replacing existing keys.
// It returns the number of records written.
func Restore(ctx context.Context, ns *kvns.Namespace, d Dump) (int, error) {
	codec := marshaller.NewJSONMarshaller()

	for i, record := range d.Records {
		metadata, err := codec.Decode(record.Metadata)
		if err != nil {
			return i, fmt.Errorf("failed to decode metadata of %q: %w", record.Key, err)
		}

		err = ns.Put(ctx, record.Key, record.Value,
			kvns.WithExpiration(record.Expiration),
			kvns.WithMetadata(metadata),
		)
		if err != nil {
			return i, err
		}
	}

	return len(d.Records), nil
}

// envelope is the encoded document. Records are kept as an opaque payload
// so that the checksum covers the exact bytes that were written.
type envelope struct {
	Version   int                `msgpack:"version"`
	Namespace string             `msgpack:"namespace"`
	Algorithm string             `msgpack:"algorithm"`
	Checksum  []byte             `msgpack:"checksum"`
	Records   msgpack.RawMessage `msgpack:"records"`
}

// Write encodes d to w with a checksum of its records.
func Write(w io.Writer, d Dump) error {
	records := d.Records
	if records == nil {
		records = []Record{}
	}

	payload, err := msgpack.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	h, err := hasher.New(hasher.Default)
	if err != nil {
		return err
	}

	sum, err := h.Hash(payload)
	if err != nil {
		return fmt.Errorf("failed to checksum records: %w", err)
	}

	doc := envelope{
		Version:   d.Version,
		Namespace: d.Namespace,
		Algorithm: h.Name(),
		Checksum:  sum,
		Records:   payload,
	}

	if err := msgpack.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("failed to encode dump: %w", err)
	}

	return nil
}

// Read decodes a dump from r and verifies its checksum.
func Read(r io.Reader) (Dump, error) {
	var doc envelope

	if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
		return Dump{}, fmt.Errorf("failed to decode dump: %w", err)
	}

	if doc.Version != Version {
		return Dump{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}

	h, err := hasher.New(doc.Algorithm)
	if err != nil {
		return Dump{}, fmt.Errorf("failed to verify dump: %w", err)
	}

	sum, err := h.Hash(doc.Records)
	if err != nil {
		return Dump{}, fmt.Errorf("failed to verify dump: %w", err)
	}

	if !bytes.Equal(sum, doc.Checksum) {
		return Dump{}, ErrChecksumMismatch
	}

	var records []Record
	if err := msgpack.Unmarshal(doc.Records, &records); err != nil {
		return Dump{}, fmt.Errorf("failed to decode records: %w", err)
	}

	return Dump{Version: doc.Version, Namespace: doc.Namespace, Records: records}, nil
}
