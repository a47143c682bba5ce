package logutils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-kvns/internal/logutils"
)

func TestNew_File(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "logs", "kvctl.log")

	logger, closer, err := logutils.New("info", file)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("key", "value").Msg("shown")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"shown"`)
	assert.Contains(t, string(data), `"key":"value"`)
	assert.Contains(t, string(data), `"time":`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	logger, closer, err := logutils.New("warn", "")
	require.NoError(t, err)
	t.Cleanup(closer)

	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, closer, err := logutils.New("loud", "")
	require.Error(t, err)
	require.NotNil(t, closer)
}
