package client

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocketPath_EnvOverride(t *testing.T) {
	t.Setenv("SWAYSOCK", "/tmp/sway-ipc.1000.1.sock")
	t.Setenv("I3SOCK", "")

	path, err := SocketPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/sway-ipc.1000.1.sock", path)
}

func TestSocketPath_I3Fallback(t *testing.T) {
	t.Setenv("SWAYSOCK", "")
	t.Setenv("I3SOCK", "/tmp/i3-ipc.sock")

	path, err := SocketPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/i3-ipc.sock", path)
}

func TestNewestSocket(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, "sway-ipc.1000.10.sock")
	newer := filepath.Join(dir, "sway-ipc.1000.11.sock")
	require.NoError(t, os.WriteFile(older, nil, 0o600))
	require.NoError(t, os.WriteFile(newer, nil, 0o600))

	// Push the mtimes apart; some filesystems are second-granular.
	now := time.Now()
	require.NoError(t, os.Chtimes(older, now.Add(-time.Hour), now.Add(-time.Hour)))
	require.NoError(t, os.Chtimes(newer, now, now))

	path, err := newestSocket(filepath.Join(dir, "sway-ipc.*.sock"))
	require.NoError(t, err)
	assert.Equal(t, newer, path)
}

func TestNewestSocket_NoMatches(t *testing.T) {
	_, err := newestSocket(filepath.Join(t.TempDir(), "sway-ipc.*.sock"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSocketNotFound)
}
