// Package tsconfig locates and shapes the project-level TypeScript
// configuration used by a documentation session: upward discovery of
// tsconfig.json, include-glob resolution, and the compiler options that are
// forced onto every program regardless of what the project configures.
package tsconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FileName is the fixed project configuration file name searched for.
const FileName = "tsconfig.json"

// Find searches upward from the shallowest input path's directory for a
// tsconfig.json. Returns the absolute path of the first hit, or "" when no
// configuration exists up to the filesystem root.
func Find(inputs []string) string {
	dir := shallowestDir(inputs)
	if dir == "" {
		return ""
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// shallowestDir returns the directory of the input path closest to the
// filesystem root. Components under analysis usually live together; starting
// from the shallowest one finds the configuration governing all of them.
func shallowestDir(inputs []string) string {
	best := ""
	bestDepth := -1
	for _, input := range inputs {
		abs, err := filepath.Abs(input)
		if err != nil {
			continue
		}
		dir := filepath.Dir(abs)
		depth := strings.Count(filepath.ToSlash(dir), "/")
		if bestDepth == -1 || depth < bestDepth {
			best = dir
			bestDepth = depth
		}
	}
	return best
}

// ResolveIncludes expands include glob patterns against root and returns the
// matching source files as absolute slash-normalized paths. Patterns support
// doublestar globs ("src/**/*.ts"). An invalid pattern is an error; a
// pattern with no matches is not.
func ResolveIncludes(root string, patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern %q", pattern)
		}
		full := pattern
		if !filepath.IsAbs(full) {
			full = filepath.Join(root, full)
		}
		matches, err := doublestar.FilepathGlob(full)
		if err != nil {
			return nil, fmt.Errorf("resolving include pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if fi, err := os.Stat(m); err != nil || fi.IsDir() {
				continue
			}
			norm := filepath.ToSlash(m)
			if !seen[norm] {
				seen[norm] = true
				files = append(files, norm)
			}
		}
	}
	return files, nil
}

// ForcedCompilerOptions are applied over the project configuration on every
// program build: the JSX markup extension stays enabled and module/target
// follow the latest semantics so component sources parse uniformly no
// matter what the project targets.
func ForcedCompilerOptions() map[string]any {
	return map[string]any{
		"jsx":              "preserve",
		"module":           "esnext",
		"target":           "esnext",
		"moduleResolution": "bundler",
		"noEmit":           true,
		"skipLibCheck":     true,
	}
}

// DefaultCompilerOptions is the hardcoded option set used when no
// tsconfig.json is found near the analyzed files.
func DefaultCompilerOptions() map[string]any {
	opts := ForcedCompilerOptions()
	opts["allowJs"] = true
	opts["esModuleInterop"] = true
	opts["allowSyntheticDefaultImports"] = true
	return opts
}
