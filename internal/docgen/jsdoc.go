package docgen

import (
	"fmt"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
)

// docComment is the parsed JSDoc attached to a symbol: the body text plus
// every tag in source order. Repeated tags accumulate.
type docComment struct {
	Body string

	tags  map[string][]string
	order []string
}

func (d docComment) Empty() bool {
	return d.Body == "" && len(d.order) == 0
}

// Tag returns the newline-joined comments of the named tag.
func (d docComment) Tag(name string) (string, bool) {
	values, ok := d.tags[name]
	if !ok {
		return "", false
	}
	return strings.Join(values, "\n"), true
}

// Render produces the displayed description: the body followed by one
// "@name text" entry per tag in source order, where a repeated tag's texts
// merge newline-joined under a single marker. The default tag is omitted
// because its value surfaces as the prop's defaultValue instead.
func (d docComment) Render() string {
	var sb strings.Builder
	sb.WriteString(d.Body)
	for _, name := range d.order {
		if name == "default" {
			continue
		}
		sb.WriteString("\n@")
		sb.WriteString(name)
		if value := strings.Join(d.tags[name], "\n"); value != "" {
			fmt.Fprintf(&sb, " %s", value)
		}
	}
	return strings.TrimSpace(sb.String())
}

func (d *docComment) addTag(name string, value string) {
	if d.tags == nil {
		d.tags = make(map[string][]string)
	}
	if _, ok := d.tags[name]; !ok {
		d.order = append(d.order, name)
	}
	d.tags[name] = append(d.tags[name], value)
}

// parseJSDoc reads the JSDoc block attached to a declaration. When several
// blocks precede the declaration only the last one counts, matching how the
// checker associates documentation.
func parseJSDoc(node *ast.Node) docComment {
	var doc docComment
	if node == nil {
		return doc
	}
	jsdocs := node.JSDoc(nil)
	if len(jsdocs) == 0 {
		return doc
	}
	jsdoc := jsdocs[len(jsdocs)-1].AsJSDoc()

	if jsdoc.Comment != nil {
		doc.Body = strings.TrimSpace(nodeListText(jsdoc.Comment))
	}
	if jsdoc.Tags == nil {
		return doc
	}
	for _, tagNode := range jsdoc.Tags.Nodes {
		name, comment := jsdocTagInfo(tagNode)
		if name == "" {
			continue
		}
		doc.addTag(name, strings.TrimSpace(comment))
	}
	return doc
}

// docForSymbol resolves the documentation of a symbol. When the symbol's own
// declarations carry no JSDoc, the root symbols are consulted: a prop
// arriving through a mapped type such as Pick keeps the documentation of the
// property it was derived from.
func docForSymbol(checker *shimchecker.Checker, sym *ast.Symbol) docComment {
	if sym == nil {
		return docComment{}
	}
	for _, decl := range sym.Declarations {
		if doc := parseJSDoc(decl); !doc.Empty() {
			return doc
		}
	}
	if checker == nil {
		return docComment{}
	}
	for _, root := range shimchecker.Checker_getRootSymbols(checker, sym) {
		if root == sym {
			continue
		}
		for _, decl := range root.Declarations {
			if doc := parseJSDoc(decl); !doc.Empty() {
				return doc
			}
		}
	}
	return docComment{}
}

// jsdocTagInfo extracts a tag's name and comment text. Custom tags parse as
// KindJSDocTag; the handful of known kinds that matter for props docs get
// explicit cases.
func jsdocTagInfo(tagNode *ast.Node) (name string, comment string) {
	if tagNode == nil {
		return "", ""
	}
	switch tagNode.Kind {
	case ast.KindJSDocTag:
		tag := tagNode.AsJSDocUnknownTag()
		if tag == nil || tag.TagName == nil {
			return "", ""
		}
		name = tag.TagName.Text()
		if tag.Comment != nil {
			comment = nodeListText(tag.Comment)
		}
		return name, comment
	case ast.KindJSDocDeprecatedTag:
		return "deprecated", ""
	}
	return "", ""
}

// nodeListText flattens a JSDoc comment node list to plain text. Links keep
// their target text.
func nodeListText(nodeList *ast.NodeList) string {
	if nodeList == nil {
		return ""
	}
	var parts []string
	for _, node := range nodeList.Nodes {
		switch node.Kind {
		case ast.KindJSDocText, ast.KindJSDocLink, ast.KindJSDocLinkCode, ast.KindJSDocLinkPlain:
			parts = append(parts, node.Text())
		}
	}
	return strings.Join(parts, "")
}
