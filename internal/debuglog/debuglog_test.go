// ABOUTME: Tests for the file-backed debug logger
// ABOUTME: Verifies init, disabled state, and log file contents

package debuglog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_EmptyDirDisablesLogging(t *testing.T) {
	require.NoError(t, Init("", "info"))
	defer Close()

	// Must not panic or create files anywhere.
	Logger().Info().Msg("dropped")
	Error("test", errors.New("dropped too"))
}

func TestInit_WritesToLogFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, "debug"))

	Logger().Info().Str("screen", "login").Msg("screen change")
	Error("search", errors.New("backend unreachable"))
	Close()

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	require.Contains(t, string(data), "screen change")
	require.Contains(t, string(data), "backend unreachable")
}

func TestLogger_SnapshotSurvivesClose(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, "info"))

	l := Logger()
	Close()

	// The handle taken before Close must stay usable for chained calls.
	l.Info().Msg("after close")
	Logger().Info().Msg("fresh handle is a no-op now")
}

func TestInit_LevelFiltersMessages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, "error"))

	Logger().Info().Msg("too quiet to appear")
	Logger().Error().Msg("loud enough")
	Close()

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	require.NotContains(t, string(data), "too quiet to appear")
	require.Contains(t, string(data), "loud enough")
}
