package docgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSessionRejectsMissingExplicitConfig(t *testing.T) {
	dir := t.TempDir()
	_, err := NewSession(dir, nil, Options{TSConfigPath: filepath.Join(dir, "tsconfig.json")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not find tsconfig")
}

func TestNewSessionDiscoversConfigUpward(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tsconfig.json"), []byte("{}"), 0o644))
	input := filepath.Join(dir, "src", "Button.tsx")
	require.NoError(t, os.MkdirAll(filepath.Dir(input), 0o755))
	require.NoError(t, os.WriteFile(input, []byte("export {};"), 0o644))

	s, err := NewSession(dir, []string{input}, Options{})
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(s.ConfigPath(), "/tsconfig.json"))
}

func TestNewSessionWithoutConfig(t *testing.T) {
	s, err := NewSession(t.TempDir(), nil, Options{})
	require.NoError(t, err)
	require.Equal(t, "", s.ConfigPath())
}

func TestSessionVirtualFileLifecycle(t *testing.T) {
	s, err := NewSession(t.TempDir(), nil, Options{})
	require.NoError(t, err)

	require.NoError(t, s.AddVirtual("job.tsx", "export {};"))
	require.Error(t, s.AddVirtual("job.tsx", "export {};"))

	s.RemoveVirtual("job.tsx")
	require.NoError(t, s.AddVirtual("job.tsx", "export {};"))

	// Removing a never-added name is a no-op.
	s.RemoveVirtual("other.tsx")
}

func TestSessionRenderConfig(t *testing.T) {
	s, err := NewSession(t.TempDir(), nil, Options{})
	require.NoError(t, err)
	require.NoError(t, s.AddVirtual("b.tsx", "export {};"))
	require.NoError(t, s.AddVirtual("a.tsx", "export {};"))

	rendered, err := s.renderConfig()
	require.NoError(t, err)

	require.Contains(t, rendered, `"include":[]`)
	require.Contains(t, rendered, "a.tsx")
	require.Contains(t, rendered, "b.tsx")
	require.Less(t, strings.Index(rendered, "a.tsx"), strings.Index(rendered, "b.tsx"), "files must be sorted")
	require.NotContains(t, rendered, "extends")
	require.Contains(t, rendered, `"allowJs":true`)
}

func TestSessionRenderConfigExtendsProject(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	cfg := filepath.Join(dir, "tsconfig.json")
	require.NoError(t, os.WriteFile(cfg, []byte("{}"), 0o644))

	s, err := NewSession(dir, nil, Options{TSConfigPath: cfg})
	require.NoError(t, err)

	rendered, err := s.renderConfig()
	require.NoError(t, err)
	require.Contains(t, rendered, `"extends"`)
	require.NotContains(t, rendered, `"allowJs"`)
}
