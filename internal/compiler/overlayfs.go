package compiler

import (
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/microsoft/typescript-go/shim/vfs"
)

// OverlayFS layers in-memory virtual sources over a delegate filesystem.
// Lookups consult the overlay first and fall back to the delegate.
//
// Mutation is not synchronized: an OverlayFS belongs to exactly one
// compilation session, and callers that need concurrency must use one
// session per consumer.
type OverlayFS struct {
	base    vfs.FS
	overlay map[string]string
}

var _ vfs.FS = (*OverlayFS)(nil)

// NewOverlayFS creates an empty overlay on top of a base filesystem.
func NewOverlayFS(base vfs.FS) *OverlayFS {
	return &OverlayFS{base: base, overlay: make(map[string]string)}
}

// AddVirtual registers an in-memory source under the given resolved path.
// Adding a name that is already present fails; virtual names are expected
// to be unique for the lifetime of the process.
func (o *OverlayFS) AddVirtual(name string, text string) error {
	if _, ok := o.overlay[name]; ok {
		return fmt.Errorf("virtual file already present: %s", name)
	}
	o.overlay[name] = text
	return nil
}

// RemoveVirtual retracts a virtual source. Removing an absent name is a no-op.
func (o *OverlayFS) RemoveVirtual(name string) {
	delete(o.overlay, name)
}

// HasVirtual reports whether a virtual source is registered under name.
func (o *OverlayFS) HasVirtual(name string) bool {
	_, ok := o.overlay[name]
	return ok
}

func (o *OverlayFS) UseCaseSensitiveFileNames() bool {
	return o.base.UseCaseSensitiveFileNames()
}

func (o *OverlayFS) FileExists(path string) bool {
	if _, ok := o.overlay[path]; ok {
		return true
	}
	return o.base.FileExists(path)
}

func (o *OverlayFS) ReadFile(path string) (contents string, ok bool) {
	if src, ok := o.overlay[path]; ok {
		return src, true
	}
	return o.base.ReadFile(path)
}

func (o *OverlayFS) DirectoryExists(path string) bool {
	prefix := dirPrefix(path)
	for name := range o.overlay {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return o.base.DirectoryExists(path)
}

func (o *OverlayFS) GetAccessibleEntries(path string) (result vfs.Entries) {
	result = o.base.GetAccessibleEntries(path)

	prefix := dirPrefix(path)
	for name := range o.overlay {
		rest, found := strings.CutPrefix(name, prefix)
		if !found {
			continue
		}
		if before, _, ok := strings.Cut(rest, "/"); ok {
			result.Directories = append(result.Directories, before)
		} else {
			result.Files = append(result.Files, rest)
		}
	}
	return result
}

func dirPrefix(path string) string {
	normalized := tspath.NormalizePath(path)
	if !strings.HasSuffix(normalized, "/") {
		normalized += "/"
	}
	return normalized
}

type overlayFileInfo struct {
	mode fs.FileMode
	name string
	size int64
}

var (
	_ fs.FileInfo = (*overlayFileInfo)(nil)
	_ fs.DirEntry = (*overlayFileInfo)(nil)
)

func (fi *overlayFileInfo) IsDir() bool                { return fi.mode.IsDir() }
func (fi *overlayFileInfo) ModTime() time.Time         { return time.Time{} }
func (fi *overlayFileInfo) Mode() fs.FileMode          { return fi.mode }
func (fi *overlayFileInfo) Name() string               { return fi.name }
func (fi *overlayFileInfo) Size() int64                { return fi.size }
func (fi *overlayFileInfo) Sys() any                   { return nil }
func (fi *overlayFileInfo) Info() (fs.FileInfo, error) { return fi, nil }
func (fi *overlayFileInfo) Type() fs.FileMode          { return fi.mode.Type() }

func (o *OverlayFS) Stat(path string) vfs.FileInfo {
	if src, ok := o.overlay[path]; ok {
		return &overlayFileInfo{name: path, size: int64(len(src))}
	}
	return o.base.Stat(path)
}

func (o *OverlayFS) WalkDir(root string, walkFn vfs.WalkDirFunc) error {
	return o.base.WalkDir(root, walkFn)
}

func (o *OverlayFS) Realpath(path string) string {
	if _, ok := o.overlay[path]; ok {
		return path
	}
	return o.base.Realpath(path)
}

func (o *OverlayFS) WriteFile(path string, data string, writeByteOrderMark bool) error {
	if _, ok := o.overlay[path]; ok {
		panic("cannot write to overlay virtual file")
	}
	return o.base.WriteFile(path, data, writeByteOrderMark)
}

func (o *OverlayFS) Remove(path string) error {
	if _, ok := o.overlay[path]; ok {
		panic("cannot remove overlay virtual file")
	}
	return o.base.Remove(path)
}

func (o *OverlayFS) Chtimes(path string, aTime time.Time, mTime time.Time) error {
	if _, ok := o.overlay[path]; ok {
		panic("cannot change times on overlay virtual file")
	}
	return o.base.Chtimes(path, aTime, mTime)
}
