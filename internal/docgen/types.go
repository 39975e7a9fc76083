// Package docgen extracts structured documentation for UI components from
// TypeScript and TSX sources. It answers "what props does this component
// accept" by compiling the project together with small synthetic sources
// that pose the question as a type-level query, then reading the answer off
// the resolved types.
package docgen

import (
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	shimast "github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
)

// ComponentDoc is the extracted documentation for a single exported
// component.
type ComponentDoc struct {
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Props       *Props `json:"props"`
}

// PropType is the printable rendering of a prop's type.
type PropType struct {
	Name string `json:"name"`
}

// ParentType records the interface or type alias a prop was declared on,
// when that declaration site is known.
type ParentType struct {
	Name     string `json:"name"`
	FileName string `json:"fileName"`
}

// DefaultValue wraps a prop's default so the distinction between "no
// default" (nil pointer) and "default is the empty string" survives
// serialization.
type DefaultValue struct {
	Value string `json:"value"`
}

// PropItem is the documentation for one prop of a component.
type PropItem struct {
	Name         string        `json:"name"`
	Required     bool          `json:"required"`
	Type         PropType      `json:"type"`
	Description  string        `json:"description"`
	DefaultValue *DefaultValue `json:"defaultValue,omitzero"`
	Parent       *ParentType   `json:"parent,omitzero"`
}

// Props is an ordered collection of prop documentation, keyed by prop name.
// Iteration and serialization preserve insertion order, which follows
// declaration order in the source.
type Props struct {
	names []string
	items map[string]PropItem
}

// NewProps returns an empty ordered prop collection.
func NewProps() *Props {
	return &Props{items: make(map[string]PropItem)}
}

// Set inserts or replaces the prop under item.Name. A replaced prop keeps
// its original position.
func (p *Props) Set(item PropItem) {
	if _, ok := p.items[item.Name]; !ok {
		p.names = append(p.names, item.Name)
	}
	p.items[item.Name] = item
}

// Get returns the prop under name and whether it exists.
func (p *Props) Get(name string) (PropItem, bool) {
	item, ok := p.items[name]
	return item, ok
}

// Names returns the prop names in insertion order.
func (p *Props) Names() []string {
	return p.names
}

// Len returns the number of props.
func (p *Props) Len() int {
	return len(p.names)
}

// MarshalJSONTo encodes the props as a JSON object whose keys appear in
// insertion order.
func (p *Props) MarshalJSONTo(enc *jsontext.Encoder) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for _, name := range p.names {
		if err := enc.WriteToken(jsontext.String(name)); err != nil {
			return err
		}
		if err := json.MarshalEncode(enc, p.items[name]); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}

var _ json.MarshalerTo = (*Props)(nil)

// Component identifies an exported component while its props are being
// extracted. Filters receive it to decide on whole-component or per-prop
// granularity.
type Component struct {
	Name     string
	Symbol   *shimast.Symbol
	FileName string
}

// RawPropFilter inspects a prop before its documentation is built. Returning
// false drops the prop without paying the extraction cost.
type RawPropFilter func(sym *shimast.Symbol, t *shimchecker.Type, comp *Component) bool

// PropItemFilter inspects a fully built PropItem. Returning false drops it
// from the component's documentation.
type PropItemFilter func(item PropItem, comp *Component) bool

// Options configures a Parser.
type Options struct {
	// TSConfigPath points at an explicit tsconfig.json. When empty the
	// configuration is discovered by searching upward from the input files.
	TSConfigPath string

	// Includes are glob patterns of additional sources compiled into every
	// program, typically ambient declarations the components depend on.
	Includes []string

	// RawFilter and ItemFilter prune props at the two filter stages. Nil
	// filters accept everything.
	RawFilter  RawPropFilter
	ItemFilter PropItemFilter
}
