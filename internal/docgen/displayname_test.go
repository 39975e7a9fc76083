package docgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameFromFile(t *testing.T) {
	cases := map[string]string{
		"/proj/src/Button.tsx":      "Button",
		"/proj/src/Card/index.tsx":  "Card",
		"/proj/src/Card/Index.tsx":  "Card",
		"/proj/src/menu-item.tsx":   "menu-item",
		"/proj/src/Toggle/index.ts": "Toggle",
	}
	for in, want := range cases {
		require.Equal(t, want, nameFromFile(in), "input %q", in)
	}
}

func TestGenericExportNames(t *testing.T) {
	require.True(t, genericExportNames["default"])
	require.True(t, genericExportNames["__function"])
	require.True(t, genericExportNames["__class"])
	require.False(t, genericExportNames["Button"])
}
