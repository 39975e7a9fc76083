package docgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocCommentRender(t *testing.T) {
	var d docComment
	d.Body = "The label text."
	d.addTag("deprecated", "use title instead")
	d.addTag("default", "primary")
	d.addTag("see", "Button")
	d.addTag("see", "IconButton")

	require.Equal(t, "The label text.\n@deprecated use title instead\n@see Button\nIconButton", d.Render())
}

func TestDocCommentRenderBareTag(t *testing.T) {
	var d docComment
	d.addTag("internal", "")
	require.Equal(t, "@internal", d.Render())
}

func TestDocCommentTag(t *testing.T) {
	var d docComment
	d.addTag("default", "5")

	value, ok := d.Tag("default")
	require.True(t, ok)
	require.Equal(t, "5", value)

	_, ok = d.Tag("see")
	require.False(t, ok)
}

func TestDocCommentEmpty(t *testing.T) {
	require.True(t, docComment{}.Empty())

	var d docComment
	d.addTag("internal", "")
	require.False(t, d.Empty())
	require.False(t, docComment{Body: "x"}.Empty())
}

func TestStripQuotes(t *testing.T) {
	cases := map[string]string{
		`"primary"`: "primary",
		`'primary'`: "primary",
		"primary":   "primary",
		`"mis'`:     `"mis'`,
		`""`:        "",
		`"`:         `"`,
	}
	for in, want := range cases {
		require.Equal(t, want, stripQuotes(in), "input %q", in)
	}
}
