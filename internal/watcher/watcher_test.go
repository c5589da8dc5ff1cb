package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tilekit/tilekit/internal/watcher"
)

func TestWatcher_DebounceMultipleWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiles.yaml")
	err := os.WriteFile(path, []byte("tiles: {}\n"), 0644)
	require.NoError(t, err, "failed to create test file")

	w, err := watcher.New(watcher.Config{
		Path:        path,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	// Rapid writes should coalesce into a single notification
	for i := 0; i < 10; i++ {
		err := os.WriteFile(path, []byte(fmt.Sprintf("tiles: {} # %d\n", i)), 0644)
		require.NoError(t, err, "failed to write file")
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-onChange:
		// Expected
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected notification but got timeout")
	}

	// No second notification should come quickly
	select {
	case <-onChange:
		t.Fatal("unexpected second notification")
	case <-time.After(100 * time.Millisecond):
		// Expected - no second notification
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tiles: {}\n"), 0644))

	w, err := watcher.New(watcher.Config{
		Path:        path,
		DebounceDur: 30 * time.Millisecond,
	})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err)

	// Writes to an unrelated file in the same directory should not notify
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(other, []byte("noise"), 0644))

	select {
	case <-onChange:
		t.Fatal("unexpected notification for unrelated file")
	case <-time.After(150 * time.Millisecond):
		// Expected
	}
}

func TestWatcher_DetectsRenameSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tiles: {}\n"), 0644))

	w, err := watcher.New(watcher.Config{
		Path:        path,
		DebounceDur: 30 * time.Millisecond,
	})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err)

	// Simulate an editor's atomic save: write a temp file, rename over it
	tmp := filepath.Join(dir, "tiles.yaml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("tiles: {a: b}\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-onChange:
		// Expected
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected notification for renamed-over file")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := watcher.DefaultConfig("x.yaml")
	require.Equal(t, "x.yaml", cfg.Path)
	require.Equal(t, 250*time.Millisecond, cfg.DebounceDur)
}
