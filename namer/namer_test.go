package namer_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-kvns/namer"
)

func TestBucketName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "test-namespace", namer.BucketName("TEST_NAMESPACE"))
	assert.Equal(t, "already-fine", namer.BucketName("already-fine"))
	assert.Equal(t, "a-b-c", namer.BucketName("A_b_C"))
}

func TestFileNamer_Paths(t *testing.T) {
	t.Parallel()

	n := namer.NewFileNamer("/data")

	dataPath, err := n.DataPath("ns", "dir/key")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data", "ns", "dir", "key"), dataPath)

	sidecar := namer.SidecarPath(dataPath)
	assert.Equal(t, filepath.Join("/data", "ns", "dir", "key.meta.json"), sidecar)
	assert.True(t, namer.IsSidecar(sidecar))
}

func TestFileNamer_InvalidKeys(t *testing.T) {
	t.Parallel()

	n := namer.NewFileNamer("/data")

	for _, key := range []string{"", "/abs", "../escape", "a/../../b", "a//b", "./a", "k" + namer.SidecarSuffix} {
		_, err := n.DataPath("ns", key)
		require.Error(t, err, "key %q", key)
		require.ErrorIs(t, err, namer.ErrInvalid, "key %q", key)

		var keyErr namer.InvalidKeyError
		require.ErrorAs(t, err, &keyErr, "key %q", key)
		assert.Equal(t, key, keyErr.Key)
	}
}

func TestFileNamer_InvalidNamespace(t *testing.T) {
	t.Parallel()

	n := namer.NewFileNamer("/data")

	for _, ns := range []string{"", ".", "..", "a/b"} {
		_, err := n.NamespaceDir(ns)

		var nameErr namer.InvalidNameError
		require.ErrorAs(t, err, &nameErr, "namespace %q", ns)
	}
}

func TestIsSidecar(t *testing.T) {
	t.Parallel()

	assert.True(t, namer.IsSidecar("key.meta.json"))
	assert.False(t, namer.IsSidecar("key.json"))
	assert.Equal(t, "a/b", namer.KeyFromRelative(filepath.Join("a", "b")))
}
