// Package compiler wraps the tsgo compiler surface used by tsxdoc: filesystem
// and host construction, the session-owned virtual-file overlay, and
// diagnostic conversion.
package compiler

import (
	"github.com/microsoft/typescript-go/shim/bundled"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/vfs"
	"github.com/microsoft/typescript-go/shim/vfs/cachedvfs"
	"github.com/microsoft/typescript-go/shim/vfs/osvfs"
)

// DiskFS is the OS filesystem with the bundled TypeScript lib files and a
// read cache, so repeated program builds do not re-read unchanged files.
// ClearCache drops the read cache when sources are known to have changed on
// disk.
type DiskFS struct {
	vfs.FS
	cached *cachedvfs.FS
}

// NewDiskFS returns a fresh disk filesystem with an empty read cache.
func NewDiskFS() *DiskFS {
	cached := cachedvfs.From(osvfs.FS())
	return &DiskFS{FS: bundled.WrapFS(cached), cached: cached}
}

// ClearCache empties the read cache; subsequent reads observe current disk
// contents.
func (d *DiskFS) ClearCache() {
	d.cached.ClearCache()
}

// NewHost creates a compiler host rooted at cwd over the given filesystem.
func NewHost(cwd string, fs vfs.FS) shimcompiler.CompilerHost {
	return shimcompiler.NewCompilerHost(cwd, fs, bundled.LibPath(), nil, nil)
}
