// Package drivertest provides a behavioral test suite shared by every
// storage driver, so that all backends stay interchangeable.
package drivertest

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-kvns/driver"
	"github.com/tarantool/go-kvns/kv"
)

// Namespace is the namespace name used by the suite.
const Namespace = "TEST_NAMESPACE"

// Config adjusts the suite to documented differences between backends.
type Config struct {
	// StaleCursorEndsListing is set by drivers built on the pagination helper,
	// where resuming after a key that no longer exists yields an empty page.
	// Drivers with a native start-after listing continue after its position.
	StaleCursorEndsListing bool
}

// ProviderFactory returns a fresh, empty provider for one test.
type ProviderFactory func(t *testing.T) driver.Provider

// Run executes the suite against providers produced by newProvider.
func Run(t *testing.T, newProvider ProviderFactory, cfg Config) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, p driver.Provider)
	}{
		{"FetchMissing", testFetchMissing},
		{"StoreFetch", testStoreFetch},
		{"StoreEmptyValue", testStoreEmptyValue},
		{"StoreBinary", testStoreBinary},
		{"StoreReplaces", testStoreReplaces},
		{"StoreHierarchicalKey", testStoreHierarchicalKey},
		{"RemoveIdempotent", testRemoveIdempotent},
		{"ListSorted", testListSorted},
		{"ListPrefix", testListPrefix},
		{"ListMeta", testListMeta},
		{"ListPagination", testListPagination},
		{"ListEmpty", testListEmpty},
		{"ListHugeLimit", testListHugeLimit},
		{"NamespaceIsolation", testNamespaceIsolation},
		{"StaleCursor", func(t *testing.T, p driver.Provider) {
			t.Helper()
			testStaleCursor(t, p, cfg.StaleCursorEndsListing)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.fn(t, newProvider(t))
		})
	}
}

func plain(value string) kv.Entry {
	return kv.Entry{Value: []byte(value), Expiration: kv.NoExpiration, Metadata: nil}
}

func mustStore(t *testing.T, d driver.Driver, key string, entry kv.Entry) {
	t.Helper()

	require.NoError(t, d.Store(context.Background(), key, entry))
}

func keys(p kv.Page) []string {
	out := make([]string, 0, len(p.Entries))
	for _, e := range p.Entries {
		out = append(out, e.Key)
	}

	return out
}

func testFetchMissing(t *testing.T, p driver.Provider) {
	t.Helper()

	_, err := p.Namespace(Namespace).Fetch(context.Background(), "missing")
	require.ErrorIs(t, err, driver.ErrNotFound)
}

func testStoreFetch(t *testing.T, p driver.Provider) {
	t.Helper()

	ctx := context.Background()
	d := p.Namespace(Namespace)

	entry := kv.Entry{
		Value:      []byte("value"),
		Expiration: 1000,
		Metadata:   json.RawMessage(`{"testing":true,"nested":{"list":[1,"two",null]},"unicode":"żółw"}`),
	}
	mustStore(t, d, "key", entry)

	got, err := d.Fetch(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got.Value)
	assert.Equal(t, int64(1000), got.Expiration)
	assert.JSONEq(t, string(entry.Metadata), string(got.Metadata))
}

func testStoreEmptyValue(t *testing.T, p driver.Provider) {
	t.Helper()

	d := p.Namespace(Namespace)
	mustStore(t, d, "empty", plain(""))

	got, err := d.Fetch(context.Background(), "empty")
	require.NoError(t, err)
	assert.Empty(t, got.Value)
	assert.Equal(t, kv.NoExpiration, got.Expiration)
	assert.Nil(t, got.Metadata)
}

func testStoreBinary(t *testing.T, p driver.Provider) {
	t.Helper()

	value := make([]byte, 256)
	for i := range value {
		value[i] = byte(i)
	}

	d := p.Namespace(Namespace)
	mustStore(t, d, "binary", kv.Entry{Value: value, Expiration: kv.NoExpiration, Metadata: nil})

	got, err := d.Fetch(context.Background(), "binary")
	require.NoError(t, err)
	assert.Equal(t, value, got.Value)
}

func testStoreReplaces(t *testing.T, p driver.Provider) {
	t.Helper()

	ctx := context.Background()
	d := p.Namespace(Namespace)

	mustStore(t, d, "key", kv.Entry{
		Value:      []byte("value"),
		Expiration: 1000,
		Metadata:   json.RawMessage(`{"testing":true}`),
	})
	mustStore(t, d, "key", plain("value2"))

	got, err := d.Fetch(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value2"), got.Value)
	assert.Equal(t, kv.NoExpiration, got.Expiration)
	assert.Nil(t, got.Metadata)

	page, err := d.List(ctx, "", 10, "")
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, kv.NoExpiration, page.Entries[0].Expiration)
	assert.Nil(t, page.Entries[0].Metadata)
}

func testStoreHierarchicalKey(t *testing.T, p driver.Provider) {
	t.Helper()

	ctx := context.Background()
	d := p.Namespace(Namespace)

	mustStore(t, d, "dir/sub/key", plain("deep"))
	mustStore(t, d, "dir/key", plain("shallow"))

	got, err := d.Fetch(ctx, "dir/sub/key")
	require.NoError(t, err)
	assert.Equal(t, []byte("deep"), got.Value)

	page, err := d.List(ctx, "dir/", 10, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"dir/key", "dir/sub/key"}, keys(page))
}

func testRemoveIdempotent(t *testing.T, p driver.Provider) {
	t.Helper()

	ctx := context.Background()
	d := p.Namespace(Namespace)

	mustStore(t, d, "key", kv.Entry{Value: []byte("v"), Expiration: 5, Metadata: json.RawMessage(`1`)})

	require.NoError(t, d.Remove(ctx, "key"))
	require.NoError(t, d.Remove(ctx, "key"))
	require.NoError(t, d.Remove(ctx, "never-existed"))

	_, err := d.Fetch(ctx, "key")
	require.ErrorIs(t, err, driver.ErrNotFound)

	page, err := d.List(ctx, "", 10, "")
	require.NoError(t, err)
	assert.Empty(t, page.Entries)
}

func testListSorted(t *testing.T, p driver.Provider) {
	t.Helper()

	d := p.Namespace(Namespace)
	for _, key := range []string{"key3", "key1", "key2"} {
		mustStore(t, d, key, plain("value"))
	}

	page, err := d.List(context.Background(), "", 1000, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"key1", "key2", "key3"}, keys(page))
	assert.Empty(t, page.Next)
}

func testListPrefix(t *testing.T, p driver.Provider) {
	t.Helper()

	d := p.Namespace(Namespace)
	for _, key := range []string{"section1key1", "section2key1", "section1key2", "other"} {
		mustStore(t, d, key, plain("value"))
	}

	page, err := d.List(context.Background(), "section1", 1000, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"section1key1", "section1key2"}, keys(page))
}

func testListMeta(t *testing.T, p driver.Provider) {
	t.Helper()

	d := p.Namespace(Namespace)
	mustStore(t, d, "a", kv.Entry{Value: []byte("1"), Expiration: 7000, Metadata: json.RawMessage(`{"k":"v"}`)})
	mustStore(t, d, "b", plain("2"))

	page, err := d.List(context.Background(), "", 10, "")
	require.NoError(t, err)
	require.Len(t, page.Entries, 2)

	assert.Equal(t, "a", page.Entries[0].Key)
	assert.Equal(t, int64(7000), page.Entries[0].Expiration)
	assert.JSONEq(t, `{"k":"v"}`, string(page.Entries[0].Metadata))

	assert.Equal(t, "b", page.Entries[1].Key)
	assert.Equal(t, kv.NoExpiration, page.Entries[1].Expiration)
	assert.Nil(t, page.Entries[1].Metadata)
}

func testListPagination(t *testing.T, p driver.Provider) {
	t.Helper()

	const total = 11

	ctx := context.Background()
	d := p.Namespace(Namespace)

	for i := total - 1; i >= 0; i-- {
		mustStore(t, d, fmt.Sprintf("key%02d", i), plain("value"))
	}

	var (
		collected []string
		pages     int
		cursor    string
	)

	for {
		page, err := d.List(ctx, "", 3, cursor)
		require.NoError(t, err)
		require.LessOrEqual(t, len(page.Entries), 3)

		collected = append(collected, keys(page)...)
		pages++

		if page.Next == "" {
			break
		}

		assert.Equal(t, page.Entries[len(page.Entries)-1].Key, page.Next)
		cursor = page.Next
	}

	assert.Equal(t, 4, pages)
	require.Len(t, collected, total)
	assert.IsIncreasing(t, collected)
}

func testListHugeLimit(t *testing.T, p driver.Provider) {
	t.Helper()

	ctx := context.Background()
	d := p.Namespace(Namespace)

	for _, key := range []string{"a", "b", "c"} {
		mustStore(t, d, key, plain("value"))
	}

	first, err := d.List(ctx, "", 1, "")
	require.NoError(t, err)
	require.Equal(t, "a", first.Next)

	rest, err := d.List(ctx, "", math.MaxInt, first.Next)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, keys(rest))
	assert.Empty(t, rest.Next)
}

func testListEmpty(t *testing.T, p driver.Provider) {
	t.Helper()

	page, err := p.Namespace(Namespace).List(context.Background(), "", 10, "")
	require.NoError(t, err)
	assert.Empty(t, page.Entries)
	assert.Empty(t, page.Next)
}

func testNamespaceIsolation(t *testing.T, p driver.Provider) {
	t.Helper()

	ctx := context.Background()

	mustStore(t, p.Namespace("ns-one"), "key", plain("one"))
	mustStore(t, p.Namespace("ns-two"), "key", plain("two"))

	got, err := p.Namespace("ns-one").Fetch(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), got.Value)

	require.NoError(t, p.Namespace("ns-two").Remove(ctx, "key"))

	_, err = p.Namespace("ns-one").Fetch(ctx, "key")
	require.NoError(t, err)
}

func testStaleCursor(t *testing.T, p driver.Provider, endsListing bool) {
	t.Helper()

	d := p.Namespace(Namespace)
	for _, key := range []string{"a", "b", "d"} {
		mustStore(t, d, key, plain("value"))
	}

	page, err := d.List(context.Background(), "", 10, "c")
	require.NoError(t, err)
	assert.Empty(t, page.Next)

	if endsListing {
		assert.Empty(t, page.Entries)
	} else {
		assert.Equal(t, []string{"d"}, keys(page))
	}
}
