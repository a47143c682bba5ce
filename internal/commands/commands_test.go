package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kvns "github.com/tarantool/go-kvns"
	"github.com/tarantool/go-kvns/internal/commands"
)

type runner struct {
	t    *testing.T
	root string
}

func newRunner(t *testing.T) runner {
	t.Helper()

	return runner{t: t, root: t.TempDir()}
}

// run executes kvctl against the runner's file backend and returns stdout.
func (r runner) run(stdin string, args ...string) (string, error) {
	r.t.Helper()

	var out bytes.Buffer

	app := commands.NewApp(&commands.Flags{}, "test")
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.Reader = strings.NewReader(stdin)

	full := append([]string{
		"kvctl",
		"--config", filepath.Join(r.root, "missing.yaml"),
		"--backend", "file",
		"--file-root", r.root,
		"--namespace", "TEST_NAMESPACE",
		"--log-level", "error",
	}, args...)

	err := app.Run(context.Background(), full)

	return out.String(), err
}

func (r runner) mustRun(stdin string, args ...string) string {
	r.t.Helper()

	out, err := r.run(stdin, args...)
	require.NoError(r.t, err)

	return out
}

func TestPutGet(t *testing.T) {
	t.Parallel()

	r := newRunner(t)

	r.mustRun("", "put", "greeting", "hello")
	assert.Equal(t, "hello\n", r.mustRun("", "get", "greeting"))

	assert.FileExists(t, filepath.Join(r.root, "TEST_NAMESPACE", "greeting"))
}

func TestPutFromStdinAndFile(t *testing.T) {
	t.Parallel()

	r := newRunner(t)

	r.mustRun("from stdin", "put", "a")
	assert.Equal(t, "from stdin", r.mustRun("", "get", "--type", "arrayBuffer", "a"))

	valueFile := filepath.Join(t.TempDir(), "value.json")
	require.NoError(t, os.WriteFile(valueFile, []byte(`{"n":1}`), 0o644))

	r.mustRun("", "put", "--file", valueFile, "b")
	assert.JSONEq(t, `{"n":1}`, r.mustRun("", "get", "--type", "json", "b"))

	_, err := r.run("", "put", "--file", valueFile, "c", "inline")
	require.Error(t, err)
}

func TestGetWithMetadata(t *testing.T) {
	t.Parallel()

	r := newRunner(t)

	r.mustRun("", "put", "--metadata", `{"owner":"ops"}`, "--expiration", "99999999999", "key", "value")

	out := r.mustRun("", "get", "--metadata", "key")
	assert.JSONEq(t, `{"value":"value","metadata":{"owner":"ops"}}`, out)
}

func TestGetMissing(t *testing.T) {
	t.Parallel()

	r := newRunner(t)

	_, err := r.run("", "get", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetJSONNull(t *testing.T) {
	t.Parallel()

	r := newRunner(t)

	r.mustRun("", "put", "key", "null")
	assert.Equal(t, "null\n", r.mustRun("", "get", "--type", "json", "key"))

	_, err := r.run("", "get", "--type", "json", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetExpired(t *testing.T) {
	t.Parallel()

	r := newRunner(t)

	r.mustRun("", "put", "--expiration", "1000", "key", "value")

	_, err := r.run("", "get", "key")
	require.Error(t, err)

	assert.NoFileExists(t, filepath.Join(r.root, "TEST_NAMESPACE", "key"))
}

func TestGetUnsupportedType(t *testing.T) {
	t.Parallel()

	r := newRunner(t)

	r.mustRun("", "put", "key", "value")

	_, err := r.run("", "get", "--type", "stream", "key")
	require.ErrorIs(t, err, kvns.ErrUnsupportedType)
}

func TestListAndDelete(t *testing.T) {
	t.Parallel()

	r := newRunner(t)

	for _, key := range []string{"key3", "key1", "key2", "other"} {
		r.mustRun("", "put", key, "value")
	}

	var first kvns.ListResult
	require.NoError(t, json.Unmarshal([]byte(r.mustRun("", "list", "--prefix", "key", "--limit", "2")), &first))
	require.Len(t, first.Keys, 2)
	assert.Equal(t, "key1", first.Keys[0].Name)
	assert.Equal(t, "key2", first.Keys[1].Name)
	assert.False(t, first.ListComplete)

	var second kvns.ListResult
	require.NoError(t, json.Unmarshal([]byte(r.mustRun("", "list", "--prefix", "key", "--limit", "2",
		"--cursor", first.Cursor)), &second))
	require.Len(t, second.Keys, 1)
	assert.Equal(t, "key3", second.Keys[0].Name)
	assert.True(t, second.ListComplete)

	r.mustRun("", "delete", "key1", "key2", "never-existed")

	var rest kvns.ListResult
	require.NoError(t, json.Unmarshal([]byte(r.mustRun("", "list")), &rest))
	require.Len(t, rest.Keys, 2)
	assert.Equal(t, "key3", rest.Keys[0].Name)
	assert.Equal(t, "other", rest.Keys[1].Name)
}

func TestListInvalidLimit(t *testing.T) {
	t.Parallel()

	_, err := newRunner(t).run("", "list", "--limit", "0")
	require.ErrorIs(t, err, kvns.ErrValidation)
}

func TestDumpRestore(t *testing.T) {
	t.Parallel()

	source := newRunner(t)
	source.mustRun("", "put", "--metadata", `[1,2]`, "--ttl", "3600", "a", "alpha")
	source.mustRun("", "put", "dir/b", "beta")

	dumpFile := filepath.Join(t.TempDir(), "ns.msgpack")
	source.mustRun("", "dump", "--out", dumpFile)

	target := newRunner(t)
	target.mustRun("", "restore", "--in", dumpFile)

	assert.JSONEq(t, `{"value":"alpha","metadata":[1,2]}`, target.mustRun("", "get", "--metadata", "a"))
	assert.Equal(t, "beta\n", target.mustRun("", "get", "dir/b"))

	data, err := os.ReadFile(dumpFile)
	require.NoError(t, err)

	third := newRunner(t)
	third.mustRun(string(data), "restore")
	assert.Equal(t, "beta\n", third.mustRun("", "get", "dir/b"))
}

func TestInvalidBackend(t *testing.T) {
	t.Parallel()

	_, err := newRunner(t).run("", "--backend", "redis", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	root := filepath.Join(dir, "data")
	configPath := filepath.Join(dir, "config.yaml")

	require.NoError(t, os.WriteFile(configPath, []byte("backend: file\nnamespace: from-config\nfile:\n  root: "+root+"\n"), 0o644))

	var out bytes.Buffer

	app := commands.NewApp(&commands.Flags{}, "test")
	app.Writer = &out
	app.ErrWriter = io.Discard

	err := app.Run(context.Background(), []string{"kvctl", "--config", configPath, "--log-level", "error", "put", "key", "value"})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "from-config", "key"))
}
