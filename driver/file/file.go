// Package file provides a local filesystem implementation of the storage
// driver interface.
//
// Each key is stored as <root>/<namespace>/<key>. Expiration and metadata,
// when present, are kept in a sidecar file next to it (see [namer.SidecarSuffix]).
// Listing walks the whole namespace directory, so it is meant for local
// development stores rather than large datasets.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/tarantool/go-kvns/driver"
	"github.com/tarantool/go-kvns/internal/page"
	"github.com/tarantool/go-kvns/kv"
	"github.com/tarantool/go-kvns/marshaller"
	"github.com/tarantool/go-kvns/namer"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// sidecar is the on-disk document holding a key's expiration and metadata.
type sidecar struct {
	Expiration int64           `json:"expiration"`
	Metadata   json.RawMessage `json:"metadata"`
}

// Store hosts namespaces as directories below a root directory.
type Store struct {
	namer namer.FileNamer
}

var _ driver.Provider = Store{} //nolint:exhaustruct

// New creates a filesystem store rooted at root.
// The directory is created lazily on the first write.
func New(root string) Store {
	return Store{namer: namer.NewFileNamer(root)}
}

// Namespace implements driver.Provider.
func (s Store) Namespace(name string) driver.Driver {
	return &Driver{
		namer:     s.namer,
		namespace: name,
		codec:     marshaller.NewTypedJSONMarshaller[sidecar](),
	}
}

// Driver is a single namespace directory.
type Driver struct {
	namer     namer.FileNamer
	namespace string
	codec     marshaller.TypedJSONMarshaller[sidecar]
}

var _ driver.Driver = &Driver{} //nolint:exhaustruct

// Fetch implements driver.Driver.
func (d *Driver) Fetch(_ context.Context, key string) (kv.Entry, error) {
	dataPath, err := d.namer.DataPath(d.namespace, key)
	if err != nil {
		return kv.Entry{}, err
	}

	value, err := readFile(dataPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return kv.Entry{}, driver.ErrNotFound
	case err != nil:
		return kv.Entry{}, err
	}

	meta, err := d.readSidecar(namer.SidecarPath(dataPath))
	if err != nil {
		return kv.Entry{}, err
	}

	return kv.Entry{
		Value:      value,
		Expiration: meta.Expiration,
		Metadata:   meta.Metadata,
	}, nil
}

// Store implements driver.Driver.
// The sidecar is rewritten or removed after the value so that no sidecar
// from a previous write survives a put without expiration and metadata.
func (d *Driver) Store(_ context.Context, key string, entry kv.Entry) error {
	dataPath, err := d.namer.DataPath(d.namespace, key)
	if err != nil {
		return err
	}

	if err := writeFile(dataPath, entry.Value); err != nil {
		return err
	}

	sidecarPath := namer.SidecarPath(dataPath)

	if !entry.HasMeta() {
		return removeFile(sidecarPath)
	}

	data, err := d.codec.Marshal(sidecar{
		Expiration: entry.Expiration,
		Metadata:   entry.Metadata,
	})
	if err != nil {
		return fmt.Errorf("failed to encode sidecar for %q: %w", key, err)
	}

	return writeFile(sidecarPath, data)
}

// Remove implements driver.Driver.
func (d *Driver) Remove(_ context.Context, key string) error {
	dataPath, err := d.namer.DataPath(d.namespace, key)
	if err != nil {
		return err
	}

	if err := removeFile(dataPath); err != nil {
		return err
	}

	return removeFile(namer.SidecarPath(dataPath))
}

// List implements driver.Driver.
func (d *Driver) List(_ context.Context, prefix string, limit int, startAfter string) (kv.Page, error) {
	dir, err := d.namer.NamespaceDir(d.namespace)
	if err != nil {
		return kv.Page{}, err
	}

	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return page.Paginate(nil, prefix, limit, startAfter), nil
	case err != nil:
		return kv.Page{}, fmt.Errorf("failed to stat namespace directory: %w", err)
	case !info.IsDir():
		return kv.Page{}, fmt.Errorf("namespace path %q is not a directory", dir)
	}

	var metas []kv.KeyMeta

	err = doublestar.GlobWalk(os.DirFS(dir), "**", func(rel string, _ fs.DirEntry) error {
		if namer.IsSidecar(rel) {
			return nil
		}

		meta, err := d.readSidecar(namer.SidecarPath(filepath.Join(dir, filepath.FromSlash(rel))))
		if err != nil {
			return err
		}

		metas = append(metas, kv.KeyMeta{
			Key:        namer.KeyFromRelative(rel),
			Expiration: meta.Expiration,
			Metadata:   meta.Metadata,
		})

		return nil
	}, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return kv.Page{}, fmt.Errorf("failed to walk namespace directory: %w", err)
	}

	return page.Paginate(metas, prefix, limit, startAfter), nil
}

// readSidecar returns the sidecar document, defaulting to no expiration and
// no metadata when the sidecar does not exist.
func (d *Driver) readSidecar(path string) (sidecar, error) {
	data, err := readFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return sidecar{Expiration: kv.NoExpiration, Metadata: nil}, nil
	case err != nil:
		return sidecar{}, err
	}

	meta, err := d.codec.Unmarshal(data)
	if err != nil {
		return sidecar{}, fmt.Errorf("failed to decode sidecar %q: %w", path, err)
	}

	if string(meta.Metadata) == "null" {
		meta.Metadata = nil
	}

	return meta, nil
}

// readFile reads a regular file. A directory at path is reported as
// fs.ErrNotExist: it only holds keys of a deeper hierarchy.
func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%q is a directory: %w", path, fs.ErrNotExist)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	return data, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create directory for %q: %w", path, err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}

	return nil
}

// removeFile deletes a regular file, tolerating its absence.
// Directories are left alone since they hold other keys.
func removeFile(path string) error {
	info, err := os.Lstat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("failed to stat %q: %w", path, err)
	case info.IsDir():
		return nil
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %q: %w", path, err)
	}

	return nil
}
