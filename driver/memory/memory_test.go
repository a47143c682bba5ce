package memory_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-kvns/driver"
	"github.com/tarantool/go-kvns/driver/memory"
	"github.com/tarantool/go-kvns/internal/testing/drivertest"
	"github.com/tarantool/go-kvns/kv"
)

func TestDriver_Conformance(t *testing.T) {
	t.Parallel()

	drivertest.Run(t, func(_ *testing.T) driver.Provider {
		return memory.New()
	}, drivertest.Config{StaleCursorEndsListing: true})
}

func TestStore_NamespaceShared(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.New()

	require.NoError(t, store.Namespace("ns").Store(ctx, "key", kv.Entry{
		Value:      []byte("value"),
		Expiration: kv.NoExpiration,
		Metadata:   nil,
	}))

	got, err := store.Namespace("ns").Fetch(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got.Value)

	d, ok := store.Namespace("ns").(*memory.Driver)
	require.True(t, ok)
	assert.Equal(t, 1, d.Len())
}

func TestDriver_NoAliasing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	d := memory.New().Namespace("ns")

	value := []byte("value")
	metadata := json.RawMessage(`{"a":1}`)

	require.NoError(t, d.Store(ctx, "key", kv.Entry{Value: value, Expiration: 10, Metadata: metadata}))

	value[0] = 'X'
	metadata[2] = 'b'

	got, err := d.Fetch(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got.Value)
	assert.JSONEq(t, `{"a":1}`, string(got.Metadata))

	got.Value[0] = 'Y'

	again, err := d.Fetch(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), again.Value)
}

func TestDriver_NilValueStoredAsEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	d := memory.New().Namespace("ns")

	require.NoError(t, d.Store(ctx, "key", kv.Entry{Value: nil, Expiration: kv.NoExpiration, Metadata: nil}))

	got, err := d.Fetch(ctx, "key")
	require.NoError(t, err)
	assert.NotNil(t, got.Value)
	assert.Empty(t, got.Value)
}
