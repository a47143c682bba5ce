package file_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-kvns/driver"
	"github.com/tarantool/go-kvns/driver/file"
	"github.com/tarantool/go-kvns/internal/testing/drivertest"
	"github.com/tarantool/go-kvns/kv"
	"github.com/tarantool/go-kvns/namer"
)

func TestDriver_Conformance(t *testing.T) {
	t.Parallel()

	drivertest.Run(t, func(t *testing.T) driver.Provider {
		return file.New(t.TempDir())
	}, drivertest.Config{StaleCursorEndsListing: true})
}

func TestDriver_Layout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()
	d := file.New(root).Namespace("ns")

	require.NoError(t, d.Store(ctx, "dir/key", kv.Entry{
		Value:      []byte("value"),
		Expiration: 1000,
		Metadata:   json.RawMessage(`{"testing":true}`),
	}))

	data, err := os.ReadFile(filepath.Join(root, "ns", "dir", "key"))
	require.NoError(t, err)
	assert.Equal(t, "value", string(data))

	sidecar, err := os.ReadFile(filepath.Join(root, "ns", "dir", "key"+namer.SidecarSuffix))
	require.NoError(t, err)
	assert.JSONEq(t, `{"expiration":1000,"metadata":{"testing":true}}`, string(sidecar))
}

func TestDriver_NoSidecarWithoutMeta(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()
	d := file.New(root).Namespace("ns")

	require.NoError(t, d.Store(ctx, "key", kv.Entry{
		Value:      []byte("value"),
		Expiration: 1000,
		Metadata:   nil,
	}))

	sidecarPath := filepath.Join(root, "ns", "key"+namer.SidecarSuffix)
	require.FileExists(t, sidecarPath)

	require.NoError(t, d.Store(ctx, "key", kv.Entry{
		Value:      []byte("value2"),
		Expiration: kv.NoExpiration,
		Metadata:   nil,
	}))

	assert.NoFileExists(t, sidecarPath)

	require.NoError(t, d.Store(ctx, "other", kv.Entry{
		Value:      []byte("value"),
		Expiration: kv.NoExpiration,
		Metadata:   nil,
	}))
	assert.NoFileExists(t, filepath.Join(root, "ns", "other"+namer.SidecarSuffix))
}

func TestDriver_RemoveDeletesSidecar(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()
	d := file.New(root).Namespace("ns")

	require.NoError(t, d.Store(ctx, "key", kv.Entry{
		Value:      []byte("value"),
		Expiration: 5,
		Metadata:   json.RawMessage(`"m"`),
	}))
	require.NoError(t, d.Remove(ctx, "key"))

	assert.NoFileExists(t, filepath.Join(root, "ns", "key"))
	assert.NoFileExists(t, filepath.Join(root, "ns", "key"+namer.SidecarSuffix))
}

func TestDriver_DirectoryIsNotAKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	d := file.New(t.TempDir()).Namespace("ns")

	require.NoError(t, d.Store(ctx, "dir/key", kv.Entry{Value: []byte("v"), Expiration: kv.NoExpiration}))

	_, err := d.Fetch(ctx, "dir")
	require.ErrorIs(t, err, driver.ErrNotFound)

	require.NoError(t, d.Remove(ctx, "dir"))

	_, err = d.Fetch(ctx, "dir/key")
	require.NoError(t, err)
}

func TestDriver_ForeignFiles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()

	dir := filepath.Join(root, "ns", "nested")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain"), []byte("hand-written"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "dated"+namer.SidecarSuffix),
		[]byte(`{"expiration":42,"metadata":null}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dated"), []byte("x"), 0o644))

	d := file.New(root).Namespace("ns")

	got, err := d.Fetch(ctx, "nested/plain")
	require.NoError(t, err)
	assert.Equal(t, []byte("hand-written"), got.Value)
	assert.Equal(t, kv.NoExpiration, got.Expiration)
	assert.Nil(t, got.Metadata)

	page, err := d.List(ctx, "", 10, "")
	require.NoError(t, err)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, "nested/dated", page.Entries[0].Key)
	assert.Equal(t, int64(42), page.Entries[0].Expiration)
	assert.Nil(t, page.Entries[0].Metadata)
	assert.Equal(t, "nested/plain", page.Entries[1].Key)
}

func TestDriver_CorruptSidecar(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "ns"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "ns", "key"), []byte("v"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "ns", "key"+namer.SidecarSuffix), []byte("{"), 0o644))

	_, err := file.New(root).Namespace("ns").Fetch(ctx, "key")
	require.Error(t, err)
	assert.NotErrorIs(t, err, driver.ErrNotFound)
}

func TestDriver_InvalidKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	d := file.New(t.TempDir()).Namespace("ns")

	for _, key := range []string{"", "../escape", "/abs", "a//b", "key" + namer.SidecarSuffix} {
		err := d.Store(ctx, key, kv.Entry{Value: []byte("v"), Expiration: kv.NoExpiration})
		require.ErrorIs(t, err, namer.ErrInvalid, "key %q", key)
	}
}

func TestDriver_InvalidNamespace(t *testing.T) {
	t.Parallel()

	_, err := file.New(t.TempDir()).Namespace("../up").List(context.Background(), "", 10, "")
	require.ErrorIs(t, err, namer.ErrInvalid)
}
