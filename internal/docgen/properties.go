package docgen

import (
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
)

// extractProps walks the properties of a resolved props type and builds the
// ordered documentation for each. Props pass through two filter stages: the
// raw filter sees the symbol before any documentation work, the item filter
// sees the finished PropItem.
func extractProps(checker *shimchecker.Checker, propsType *shimchecker.Type, comp *Component, rawFilter RawPropFilter, itemFilter PropItemFilter) *Props {
	props := NewProps()
	for _, sym := range shimchecker.Checker_getPropertiesOfType(checker, propsType) {
		propType := shimchecker.Checker_getTypeOfSymbol(checker, sym)
		if !rawFilter(sym, propType, comp) {
			continue
		}
		item := buildPropItem(checker, sym, propType)
		if !itemFilter(item, comp) {
			continue
		}
		props.Set(item)
	}
	return props
}

func buildPropItem(checker *shimchecker.Checker, sym *ast.Symbol, propType *shimchecker.Type) PropItem {
	required := sym.Flags&ast.SymbolFlagsOptional == 0

	// Optional props carry undefined in their apparent type; print the type
	// a caller would actually pass.
	printable := propType
	if !required {
		printable = shimchecker.Checker_getNonNullableType(checker, propType)
	}

	doc := docForSymbol(checker, sym)

	item := PropItem{
		Name:        sym.Name,
		Required:    required,
		Type:        PropType{Name: shimchecker.Checker_typeToString(checker, printable)},
		Description: doc.Render(),
		Parent:      propParent(sym),
	}
	if value, ok := doc.Tag("default"); ok {
		item.DefaultValue = &DefaultValue{Value: stripQuotes(value)}
	}
	return item
}

// propParent reports the interface or named type literal the prop was
// declared on. Props synthesized by the checker (mapped types, intersections
// of anonymous literals) have no reportable parent.
func propParent(sym *ast.Symbol) *ParentType {
	if len(sym.Declarations) == 0 {
		return nil
	}
	decl := sym.Declarations[0]
	parent := decl.Parent
	if parent == nil {
		return nil
	}

	var name string
	switch parent.Kind {
	case ast.KindInterfaceDeclaration:
		name = parent.AsInterfaceDeclaration().Name().Text()
	case ast.KindTypeLiteral:
		alias := parent.Parent
		if alias == nil || alias.Kind != ast.KindTypeAliasDeclaration {
			return nil
		}
		name = alias.AsTypeAliasDeclaration().Name().Text()
	default:
		return nil
	}

	sf := ast.GetSourceFileOfNode(decl)
	if sf == nil {
		return nil
	}
	return &ParentType{Name: name, FileName: sf.FileName()}
}

// stripQuotes unwraps one level of matched single or double quotes from a
// default value so "@default "primary"" and "@default primary" document the
// same default.
func stripQuotes(value string) string {
	if len(value) >= 2 {
		if (strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)) ||
			(strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'")) {
			return value[1 : len(value)-1]
		}
	}
	return value
}
