package tsconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFindWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "tsconfig.json"), "{}")
	input := filepath.Join(root, "src", "components", "Button.tsx")
	writeFile(t, input, "export {};")

	got := Find([]string{input})
	require.Equal(t, filepath.Join(root, "tsconfig.json"), got)
}

func TestFindPrefersNearestConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "tsconfig.json"), "{}")
	writeFile(t, filepath.Join(root, "pkg", "tsconfig.json"), "{}")
	input := filepath.Join(root, "pkg", "src", "App.tsx")
	writeFile(t, input, "export {};")

	got := Find([]string{input})
	require.Equal(t, filepath.Join(root, "pkg", "tsconfig.json"), got)
}

func TestFindUsesShallowestInput(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "tsconfig.json"), "{}")
	shallow := filepath.Join(root, "App.tsx")
	deep := filepath.Join(root, "a", "b", "c", "Deep.tsx")
	writeFile(t, shallow, "export {};")
	writeFile(t, deep, "export {};")

	got := Find([]string{deep, shallow})
	require.Equal(t, filepath.Join(root, "tsconfig.json"), got)
}

func TestFindNoInputs(t *testing.T) {
	require.Equal(t, "", Find(nil))
}

func TestResolveIncludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "types", "react.d.ts"), "")
	writeFile(t, filepath.Join(root, "types", "deep", "globals.d.ts"), "")
	writeFile(t, filepath.Join(root, "src", "main.ts"), "")

	files, err := ResolveIncludes(root, []string{"types/**/*.d.ts"})
	require.NoError(t, err)
	require.Len(t, files, 2)

	// A second matching pattern does not duplicate entries.
	files, err = ResolveIncludes(root, []string{"types/**/*.d.ts", "**/*.d.ts"})
	require.NoError(t, err)
	require.Len(t, files, 2)
}

func TestResolveIncludesNoMatches(t *testing.T) {
	files, err := ResolveIncludes(t.TempDir(), []string{"nope/**/*.d.ts"})
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestResolveIncludesInvalidPattern(t *testing.T) {
	_, err := ResolveIncludes(t.TempDir(), []string{"types/[.d.ts"})
	require.Error(t, err)
}

func TestCompilerOptionDefaults(t *testing.T) {
	forced := ForcedCompilerOptions()
	require.Equal(t, "preserve", forced["jsx"])
	require.Equal(t, true, forced["noEmit"])
	require.NotContains(t, forced, "allowJs")

	defaults := DefaultCompilerOptions()
	require.Equal(t, true, defaults["allowJs"])
	require.Equal(t, "preserve", defaults["jsx"])
}
