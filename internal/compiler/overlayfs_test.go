package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/stretchr/testify/require"
)

func TestOverlayVirtualFiles(t *testing.T) {
	fs := NewOverlayFS(NewDiskFS())

	require.NoError(t, fs.AddVirtual("/virtual/src/a.ts", "export const a = 1;"))
	require.True(t, fs.FileExists("/virtual/src/a.ts"))
	require.True(t, fs.HasVirtual("/virtual/src/a.ts"))

	content, ok := fs.ReadFile("/virtual/src/a.ts")
	require.True(t, ok)
	require.Equal(t, "export const a = 1;", content)

	info := fs.Stat("/virtual/src/a.ts")
	require.NotNil(t, info)
	require.Equal(t, int64(len(content)), info.Size())
}

func TestOverlayDuplicateAddFails(t *testing.T) {
	fs := NewOverlayFS(NewDiskFS())
	require.NoError(t, fs.AddVirtual("/virtual/a.ts", ""))
	require.Error(t, fs.AddVirtual("/virtual/a.ts", ""))
}

func TestOverlayRemoveVirtual(t *testing.T) {
	fs := NewOverlayFS(NewDiskFS())
	require.NoError(t, fs.AddVirtual("/virtual/a.ts", "x"))

	fs.RemoveVirtual("/virtual/a.ts")
	require.False(t, fs.FileExists("/virtual/a.ts"))

	// Removing an absent name is a no-op.
	fs.RemoveVirtual("/virtual/a.ts")
}

func TestOverlayDirectoryListing(t *testing.T) {
	fs := NewOverlayFS(NewDiskFS())
	require.NoError(t, fs.AddVirtual("/virtual/src/a.ts", ""))
	require.NoError(t, fs.AddVirtual("/virtual/src/b.ts", ""))

	require.True(t, fs.DirectoryExists("/virtual/src"))

	entries := fs.GetAccessibleEntries("/virtual/src")
	require.Contains(t, entries.Files, "a.ts")
	require.Contains(t, entries.Files, "b.ts")

	parent := fs.GetAccessibleEntries("/virtual")
	require.Contains(t, parent.Directories, "src")
}

func TestOverlayRealpathForVirtual(t *testing.T) {
	fs := NewOverlayFS(NewDiskFS())
	require.NoError(t, fs.AddVirtual("/virtual/a.ts", ""))
	require.Equal(t, "/virtual/a.ts", fs.Realpath("/virtual/a.ts"))
}

func TestOverlayDelegatesToDisk(t *testing.T) {
	dir := t.TempDir()
	onDisk := filepath.Join(dir, "real.ts")
	require.NoError(t, os.WriteFile(onDisk, []byte("export {};"), 0o644))

	fs := NewOverlayFS(NewDiskFS())
	normalized := tspath.NormalizePath(onDisk)

	require.True(t, fs.FileExists(normalized))
	content, ok := fs.ReadFile(normalized)
	require.True(t, ok)
	require.Equal(t, "export {};", content)
}
