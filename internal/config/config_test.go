package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-kvns/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func fields(t *testing.T, err error) []string {
	t.Helper()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	out := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, fe.Field)
	}

	return out
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultConfig(), *cfg)
		require.NoError(t, cfg.Validate())
	}
}

func TestLoad_OverDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
backend: s3
namespace: TEST_NAMESPACE
s3:
  endpoint: http://127.0.0.1:9000
  access_key: minioadmin
  secret_key: minioadmin
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.BackendS3, cfg.Backend)
	assert.Equal(t, "TEST_NAMESPACE", cfg.Namespace)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.S3.Endpoint)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
	assert.True(t, cfg.S3.UsePathStyle)
	assert.Equal(t, "./kv-data", cfg.File.Root)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Malformed(t *testing.T) {
	t.Parallel()

	_, err := config.Load(writeConfig(t, "backend: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate_UnknownBackend(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Backend = "redis"

	assert.Contains(t, fields(t, cfg.Validate()), "backend")
}

func TestValidate_MissingNamespace(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Namespace = ""

	assert.Contains(t, fields(t, cfg.Validate()), "namespace")
}

func TestValidate_FileRoot(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.File.Root = ""

	assert.Contains(t, fields(t, cfg.Validate()), "file.root")

	cfg.Backend = config.BackendMemory
	require.NoError(t, cfg.Validate())
}

func TestValidate_S3(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Backend = config.BackendS3
	cfg.S3.Endpoint = "ftp://example.com"
	cfg.S3.Region = ""
	cfg.S3.AccessKey = "key"

	got := fields(t, cfg.Validate())
	assert.Contains(t, got, "s3.endpoint")
	assert.Contains(t, got, "s3.region")
	assert.Contains(t, got, "s3.secret_key")

	cfg.S3.Endpoint = "https://s3.example.com"
	cfg.S3.Region = "eu-west-1"
	cfg.S3.SecretKey = "secret"
	require.NoError(t, cfg.Validate())
}
