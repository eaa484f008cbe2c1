package pathutil_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/mapty/internal/pathutil"
	"github.com/ayoisaiah/mapty/internal/testutil"
)

func TestInitialize(t *testing.T) {
	dir := testutil.SetupXDG(t)

	require.NoError(t, pathutil.Initialize())

	assert.Equal(
		t,
		filepath.Join(dir, "config", "mapty", "config.yml"),
		pathutil.ConfigFilePath(),
	)
	assert.Equal(
		t,
		filepath.Join(dir, "data", "mapty", "mapty.db"),
		pathutil.DBFilePath(),
	)
	assert.Equal(
		t,
		filepath.Join(dir, "data", "mapty", "log", "mapty.log"),
		pathutil.LogFilePath(),
	)
}

func TestInitializeEnvSuffix(t *testing.T) {
	dir := testutil.SetupXDG(t)
	t.Setenv("MAPTY_ENV", "dev")

	require.NoError(t, pathutil.Initialize())

	assert.Equal(
		t,
		filepath.Join(dir, "config", "mapty", "config_dev.yml"),
		pathutil.ConfigFilePath(),
	)
	assert.Equal(
		t,
		filepath.Join(dir, "data", "mapty", "mapty_dev.db"),
		pathutil.DBFilePath(),
	)
}
