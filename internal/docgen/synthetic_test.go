package docgen

import (
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyntheticJobDefaultExport(t *testing.T) {
	job := newSyntheticJob("default", "/proj/src/Button.tsx")

	require.Equal(t, "/proj/src", path.Dir(job.FileName))
	require.True(t, strings.HasSuffix(job.FileName, "__.tsx"))

	src := job.Source()
	require.Contains(t, src, `import __target from "./Button";`)
	require.Contains(t, src, "export type Props = __TsxdocProps<typeof __target>;")
}

func TestSyntheticJobNamedExport(t *testing.T) {
	job := newSyntheticJob("Button", "/proj/src/buttons.ts")
	require.Contains(t, job.Source(), `import { Button as __target } from "./buttons";`)
}

func TestSyntheticJobStringLiteralExport(t *testing.T) {
	job := newSyntheticJob("weird name", "/proj/src/odd.tsx")
	require.Contains(t, job.Source(), `import { "weird name" as __target } from "./odd";`)
}

func TestSyntheticJobNamesAreUnique(t *testing.T) {
	a := newSyntheticJob("A", "/proj/src/x.tsx")
	b := newSyntheticJob("B", "/proj/src/x.tsx")
	require.NotEqual(t, a.FileName, b.FileName)
}

func TestStripSourceExtension(t *testing.T) {
	cases := map[string]string{
		"Button.tsx":   "Button",
		"Button.ts":    "Button",
		"Button.jsx":   "Button",
		"Button.d.ts":  "Button",
		"Button.mjs":   "Button",
		"Button":       "Button",
		"Button.story": "Button.story",
	}
	for in, want := range cases {
		require.Equal(t, want, stripSourceExtension(in), "input %q", in)
	}
}

func TestIsIdentifierName(t *testing.T) {
	for _, ok := range []string{"Button", "_x", "$el", "a1"} {
		require.True(t, isIdentifierName(ok), "%q", ok)
	}
	for _, bad := range []string{"", "1a", "a-b", "a b", "ünïcode"} {
		require.False(t, isIdentifierName(bad), "%q", bad)
	}
}
