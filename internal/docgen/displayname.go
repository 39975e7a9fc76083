package docgen

import (
	"path"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
)

// genericExportNames are export names that say nothing about the component,
// so naming falls through to assignments, class statics, or the file name.
var genericExportNames = map[string]bool{
	"default":    true,
	"__function": true,
	"__class":    true,
}

// resolveDisplayName picks a component's display name:
//
//  1. a top-level `X.displayName = "..."` assignment targeting the component
//  2. a `displayName` class property with a string literal initializer
//  3. the export name, unless it is generic
//  4. the file name, with index files deferring to their directory
func resolveDisplayName(checker *shimchecker.Checker, comp *Component, sf *ast.SourceFile) string {
	if name := displayNameAssignment(checker, comp, sf); name != "" {
		return name
	}
	if name := displayNameClassProperty(comp.Symbol); name != "" {
		return name
	}
	if !genericExportNames[comp.Name] {
		return comp.Name
	}
	return nameFromFile(comp.FileName)
}

// displayNameAssignment scans top-level statements for
// `X.displayName = "literal"` where X resolves to the component's symbol.
func displayNameAssignment(checker *shimchecker.Checker, comp *Component, sf *ast.SourceFile) string {
	if sf == nil {
		return ""
	}
	for _, stmt := range sf.Statements.Nodes {
		if stmt.Kind != ast.KindExpressionStatement {
			continue
		}
		expr := stmt.AsExpressionStatement().Expression
		if expr == nil || expr.Kind != ast.KindBinaryExpression {
			continue
		}
		bin := expr.AsBinaryExpression()
		if bin.OperatorToken == nil || bin.OperatorToken.Kind != ast.KindEqualsToken {
			continue
		}
		if bin.Left == nil || bin.Left.Kind != ast.KindPropertyAccessExpression {
			continue
		}
		pa := bin.Left.AsPropertyAccessExpression()
		if pa.Name() == nil || pa.Name().Kind != ast.KindIdentifier || pa.Name().AsIdentifier().Text != "displayName" {
			continue
		}
		if bin.Right == nil || bin.Right.Kind != ast.KindStringLiteral {
			continue
		}

		target := checker.GetSymbolAtLocation(pa.Expression)
		if target == nil {
			continue
		}
		if target.Flags&ast.SymbolFlagsAlias != 0 {
			target = checker.GetAliasedSymbol(target)
		}
		if target == comp.Symbol {
			return bin.Right.AsStringLiteral().Text
		}
	}
	return ""
}

// displayNameClassProperty reads a string-literal displayName property off a
// class component's declaration.
func displayNameClassProperty(sym *ast.Symbol) string {
	if sym == nil || sym.ValueDeclaration == nil || sym.ValueDeclaration.Kind != ast.KindClassDeclaration {
		return ""
	}
	class := sym.ValueDeclaration.AsClassDeclaration()
	for _, member := range class.Members.Nodes {
		if member.Kind != ast.KindPropertyDeclaration {
			continue
		}
		prop := member.AsPropertyDeclaration()
		if prop.Name() == nil || prop.Name().Kind != ast.KindIdentifier || prop.Name().AsIdentifier().Text != "displayName" {
			continue
		}
		if prop.Initializer != nil && prop.Initializer.Kind == ast.KindStringLiteral {
			return prop.Initializer.AsStringLiteral().Text
		}
	}
	return ""
}

// nameFromFile derives a component name from its file path. Index files take
// the containing directory's name, which is the convention for components
// published as Button/index.tsx.
func nameFromFile(fileName string) string {
	base := stripSourceExtension(path.Base(fileName))
	if strings.EqualFold(base, "index") {
		if dir := path.Base(path.Dir(fileName)); dir != "." && dir != "/" && dir != "" {
			return dir
		}
	}
	return base
}
