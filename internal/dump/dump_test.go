package dump_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	kvns "github.com/tarantool/go-kvns"
	"github.com/tarantool/go-kvns/driver/file"
	"github.com/tarantool/go-kvns/driver/memory"
	"github.com/tarantool/go-kvns/hasher"
	"github.com/tarantool/go-kvns/internal/dump"
	"github.com/tarantool/go-kvns/kv"
)

func fixedClock(now int64) kvns.Option {
	return kvns.WithClock(kvns.ClockFunc(func() int64 { return now }))
}

func TestCollectRestore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	source := kvns.New(memory.New().Namespace("source"), fixedClock(5000))

	require.NoError(t, source.Put(ctx, "b", []byte("plain")))
	require.NoError(t, source.Put(ctx, "a", []byte{0x00, 0xff},
		kvns.WithExpiration(9000),
		kvns.WithMetadata(map[string]any{"owner": "ops", "tags": []any{"x", 1.5}})))
	require.NoError(t, source.Put(ctx, "expired", []byte("gone"), kvns.WithExpiration(1000)))
	require.NoError(t, source.Put(ctx, "dir/nested", []byte{}))

	collected, err := dump.Collect(ctx, source, "source")
	require.NoError(t, err)

	assert.Equal(t, dump.Version, collected.Version)
	assert.Equal(t, "source", collected.Namespace)
	require.Len(t, collected.Records, 3)
	assert.Equal(t, "a", collected.Records[0].Key)
	assert.Equal(t, "b", collected.Records[1].Key)
	assert.Equal(t, "dir/nested", collected.Records[2].Key)
	assert.Equal(t, int64(9000), collected.Records[0].Expiration)
	assert.Equal(t, kv.NoExpiration, collected.Records[1].Expiration)
	assert.Nil(t, collected.Records[1].Metadata)

	var buf bytes.Buffer
	require.NoError(t, dump.Write(&buf, collected))

	decoded, err := dump.Read(&buf)
	require.NoError(t, err)

	target := kvns.New(file.New(t.TempDir()).Namespace("target"), fixedClock(5000))

	n, err := dump.Restore(ctx, target, decoded)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	result, err := target.GetWithMetadata(ctx, "a", kvns.TypeArrayBuffer)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff}, result.Value)
	assert.Equal(t, map[string]any{"owner": "ops", "tags": []any{"x", json.Number("1.5")}}, result.Metadata)

	listed, err := target.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed.Keys, 3)
	require.NotNil(t, listed.Keys[0].Expiration)
	assert.Equal(t, int64(9000), *listed.Keys[0].Expiration)
	assert.Nil(t, listed.Keys[1].Expiration)

	value, err := target.Get(ctx, "dir/nested", kvns.TypeText)
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestCollect_ManyPages(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ns := kvns.New(memory.New().Namespace("ns"))

	const total = kvns.DefaultListLimit + 5
	for i := range total {
		require.NoError(t, ns.Put(ctx, string(rune('a'+i%26))+string(rune(0x100+i)), []byte("v")))
	}

	collected, err := dump.Collect(ctx, ns, "ns")
	require.NoError(t, err)
	assert.Len(t, collected.Records, total)
}

func TestRead_UnsupportedVersion(t *testing.T) {
	t.Parallel()

	data, err := msgpack.Marshal(map[string]any{"version": 99, "namespace": "ns"})
	require.NoError(t, err)

	_, err = dump.Read(bytes.NewReader(data))
	require.ErrorIs(t, err, dump.ErrUnsupportedVersion)
}

func TestRead_ChecksumMismatch(t *testing.T) {
	t.Parallel()

	payload, err := msgpack.Marshal([]dump.Record{{Key: "k", Value: []byte("v"), Expiration: -1, Metadata: nil}})
	require.NoError(t, err)

	data, err := msgpack.Marshal(map[string]any{
		"version":   dump.Version,
		"namespace": "ns",
		"algorithm": "sha256",
		"checksum":  []byte{0x01, 0x02},
		"records":   msgpack.RawMessage(payload),
	})
	require.NoError(t, err)

	_, err = dump.Read(bytes.NewReader(data))
	require.ErrorIs(t, err, dump.ErrChecksumMismatch)
}

func TestRead_UnknownAlgorithm(t *testing.T) {
	t.Parallel()

	data, err := msgpack.Marshal(map[string]any{
		"version":   dump.Version,
		"namespace": "ns",
		"algorithm": "crc1",
		"checksum":  []byte{0x01},
		"records":   msgpack.RawMessage{0x90},
	})
	require.NoError(t, err)

	_, err = dump.Read(bytes.NewReader(data))
	require.ErrorIs(t, err, hasher.ErrUnknownAlgorithm)
}

func TestWriteRead_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, dump.Write(&buf, dump.Dump{Version: dump.Version, Namespace: "ns", Records: nil}))

	decoded, err := dump.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, "ns", decoded.Namespace)
	assert.Empty(t, decoded.Records)
}

func TestRead_Garbage(t *testing.T) {
	t.Parallel()

	_, err := dump.Read(bytes.NewReader([]byte("not msgpack at all")))
	require.Error(t, err)
}

func TestCollectRestore_LargeIntegerMetadata(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	source := kvns.New(memory.New().Namespace("source"), fixedClock(5000))

	require.NoError(t, source.Put(ctx, "key", []byte("v"),
		kvns.WithMetadata(map[string]any{"id": int64(9007199254740993)})))

	collected, err := dump.Collect(ctx, source, "source")
	require.NoError(t, err)
	require.Len(t, collected.Records, 1)
	assert.JSONEq(t, `{"id":9007199254740993}`, string(collected.Records[0].Metadata))

	var buf bytes.Buffer
	require.NoError(t, dump.Write(&buf, collected))

	decoded, err := dump.Read(&buf)
	require.NoError(t, err)

	target := kvns.New(memory.New().Namespace("target"), fixedClock(5000))

	_, err = dump.Restore(ctx, target, decoded)
	require.NoError(t, err)

	result, err := target.GetWithMetadata(ctx, "key", kvns.TypeText)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": json.Number("9007199254740993")}, result.Metadata)
}

func TestWrite_DefaultAlgorithm(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, dump.Write(&buf, dump.Dump{Version: dump.Version, Namespace: "ns", Records: nil}))

	var doc struct {
		Algorithm string `msgpack:"algorithm"`
		Checksum  []byte `msgpack:"checksum"`
	}
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, hasher.Default, doc.Algorithm)
	assert.Len(t, doc.Checksum, 32)
}
