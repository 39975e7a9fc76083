package docgen

import (
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/require"
)

func TestPropsKeepInsertionOrder(t *testing.T) {
	props := NewProps()
	props.Set(PropItem{Name: "variant"})
	props.Set(PropItem{Name: "label"})
	props.Set(PropItem{Name: "onClick"})

	require.Equal(t, []string{"variant", "label", "onClick"}, props.Names())
	require.Equal(t, 3, props.Len())

	// Replacing keeps the original position.
	props.Set(PropItem{Name: "label", Required: true})
	require.Equal(t, []string{"variant", "label", "onClick"}, props.Names())

	label, ok := props.Get("label")
	require.True(t, ok)
	require.True(t, label.Required)

	_, ok = props.Get("missing")
	require.False(t, ok)
}

func TestPropsMarshalOrder(t *testing.T) {
	props := NewProps()
	props.Set(PropItem{Name: "b", Type: PropType{Name: "string"}})
	props.Set(PropItem{Name: "a", Required: true, Type: PropType{Name: "number"}})

	data, err := json.Marshal(props)
	require.NoError(t, err)

	got := string(data)
	bIdx := strings.Index(got, `"b"`)
	aIdx := strings.Index(got, `"a"`)
	require.GreaterOrEqual(t, bIdx, 0)
	require.GreaterOrEqual(t, aIdx, 0)
	require.Less(t, bIdx, aIdx, "insertion order must survive marshaling: %s", got)
}

func TestPropItemOmitsEmptyOptionalFields(t *testing.T) {
	item := PropItem{Name: "label", Required: true, Type: PropType{Name: "string"}}
	data, err := json.Marshal(item)
	require.NoError(t, err)
	require.NotContains(t, string(data), "defaultValue")
	require.NotContains(t, string(data), "parent")

	item.DefaultValue = &DefaultValue{Value: "hi"}
	item.Parent = &ParentType{Name: "Props", FileName: "/p.ts"}
	data, err = json.Marshal(item)
	require.NoError(t, err)
	require.Contains(t, string(data), `"defaultValue"`)
	require.Contains(t, string(data), `"parent"`)
}
