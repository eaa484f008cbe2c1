package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/mapty/internal/logging"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		Input string
		Want  slog.Level
	}{
		{Input: "debug", Want: slog.LevelDebug},
		{Input: "INFO", Want: slog.LevelInfo},
		{Input: " warn ", Want: slog.LevelWarn},
		{Input: "error", Want: slog.LevelError},
	}

	for _, tc := range testCases {
		got, err := logging.ParseLevel(tc.Input)
		require.NoError(t, err)
		assert.Equal(t, tc.Want, got)
	}

	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", slog.String("id", "abc"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"id":"abc"`)
}

func TestSetupWritesFile(t *testing.T) {
	defaultLogger := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(defaultLogger)
	})

	path := filepath.Join(t.TempDir(), "log", "mapty.log")

	logger, closer := logging.Setup(path, slog.LevelInfo)
	logger.Info("workout saved")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "workout saved")
}
