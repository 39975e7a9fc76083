package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWriteBatch(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Button.tsx")
	require.NoError(t, os.WriteFile(file, []byte("export {};"), 0o644))

	events := make(chan []Event, 1)
	w, err := New([]string{dir}, []string{".tsx"}, 50*time.Millisecond, func(batch []Event) {
		select {
		case events <- batch:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Stop()

	go w.Watch()

	// Give the event loop a moment to start before mutating the tree.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte("export const x = 1;"), 0o644))

	select {
	case batch := <-events:
		require.NotEmpty(t, batch)
		require.Equal(t, file, batch[0].Path)
	case <-time.After(3 * time.Second):
		t.Fatal("no change batch delivered")
	}
}

func TestWatcherIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()

	events := make(chan []Event, 1)
	w, err := New([]string{dir}, []string{".tsx"}, 50*time.Millisecond, func(batch []Event) {
		select {
		case events <- batch:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Stop()

	go w.Watch()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o644))

	select {
	case batch := <-events:
		t.Fatalf("unexpected batch for ignored extension: %+v", batch)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestIgnoredDirs(t *testing.T) {
	require.True(t, ignoredDir("node_modules"))
	require.True(t, ignoredDir(".git"))
	require.False(t, ignoredDir("src"))
}
