package docgen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/tools/txtar"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"

	"github.com/tsxdoc/tsxdoc/internal/docgen"
)

// projectTSConfig is the configuration written into every test project.
const projectTSConfig = `{
  "compilerOptions": {
    "strict": true,
    "jsx": "preserve",
    "target": "esnext",
    "module": "esnext",
    "moduleResolution": "bundler"
  }
}
`

// reactShim is a minimal ambient JSX declaration standing in for the React
// typings: just enough for props resolution, including defaultProps folding.
const reactShim = `declare namespace JSX {
    interface Element {}
    interface ElementAttributesProperty { props: {}; }
    interface IntrinsicElements { [elem: string]: any; }
    type LibraryManagedAttributes<C, P> = C extends { defaultProps: infer D }
        ? Omit<P, keyof D> & Partial<Pick<P, Extract<keyof D, keyof P>>>
        : P;
}
`

// writeProject expands a txtar archive into a fresh project directory that
// already carries the tsconfig and the ambient JSX declarations.
func writeProject(t *testing.T, archive string) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("resolving temp dir: %v", err)
	}

	files := txtar.Parse([]byte(archive)).Files
	files = append(files,
		txtar.File{Name: "tsconfig.json", Data: []byte(projectTSConfig)},
		txtar.File{Name: "react.d.ts", Data: []byte(reactShim)},
	)
	for _, f := range files {
		p := filepath.Join(dir, f.Name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("creating %s: %v", filepath.Dir(p), err)
		}
		if err := os.WriteFile(p, f.Data, 0o644); err != nil {
			t.Fatalf("writing %s: %v", f.Name, err)
		}
	}
	return dir
}

// newProjectParser builds a parser rooted at the project directory, pinned
// to the project's tsconfig and ambient declarations.
func newProjectParser(t *testing.T, dir string, opts docgen.Options) *docgen.Parser {
	t.Helper()
	opts.TSConfigPath = filepath.Join(dir, "tsconfig.json")
	opts.Includes = append(opts.Includes, "react.d.ts")
	return docgen.NewParser(dir, opts)
}

// mustParse extracts docs for one file and fails the test on error.
func mustParse(t *testing.T, parser *docgen.Parser, dir string, file string) []docgen.ComponentDoc {
	t.Helper()
	docs, err := parser.Parse(filepath.Join(dir, file))
	if err != nil {
		t.Fatalf("Parse(%s): %v", file, err)
	}
	return docs
}

func TestParseFunctionComponent(t *testing.T) {
	dir := writeProject(t, `
-- Button.tsx --
export interface ButtonProps {
    /** The label text. */
    label: string;
    /**
     * How many times to ring the bell.
     * @default 5
     */
    count?: number;
}

/** A clickable button. */
export function Button(props: ButtonProps) {
    return null;
}
`)
	parser := newProjectParser(t, dir, docgen.Options{})
	docs := mustParse(t, parser, dir, "Button.tsx")

	if len(docs) != 1 {
		t.Fatalf("expected 1 component, got %d", len(docs))
	}
	doc := docs[0]
	if doc.DisplayName != "Button" {
		t.Errorf("displayName = %q, want %q", doc.DisplayName, "Button")
	}
	if doc.Description != "A clickable button." {
		t.Errorf("description = %q", doc.Description)
	}

	names := doc.Props.Names()
	if len(names) != 2 || names[0] != "label" || names[1] != "count" {
		t.Fatalf("prop order = %v, want [label count]", names)
	}

	label, _ := doc.Props.Get("label")
	if !label.Required {
		t.Error("label should be required")
	}
	if label.Type.Name != "string" {
		t.Errorf("label type = %q, want string", label.Type.Name)
	}
	if label.Description != "The label text." {
		t.Errorf("label description = %q", label.Description)
	}
	if label.DefaultValue != nil {
		t.Errorf("label should have no default, got %q", label.DefaultValue.Value)
	}
	if label.Parent == nil || label.Parent.Name != "ButtonProps" {
		t.Errorf("label parent = %+v, want ButtonProps", label.Parent)
	}

	count, _ := doc.Props.Get("count")
	if count.Required {
		t.Error("count should be optional")
	}
	if count.Type.Name != "number" {
		t.Errorf("count type = %q, want number", count.Type.Name)
	}
	if count.Description != "How many times to ring the bell." {
		t.Errorf("count description = %q", count.Description)
	}
	if count.DefaultValue == nil || count.DefaultValue.Value != "5" {
		t.Errorf("count default = %+v, want 5", count.DefaultValue)
	}
}

func TestParseDefaultExportNamedFromFile(t *testing.T) {
	dir := writeProject(t, `
-- Button.tsx --
interface Props {
    label: string;
}

export default function (props: Props) {
    return null;
}
`)
	parser := newProjectParser(t, dir, docgen.Options{})
	docs := mustParse(t, parser, dir, "Button.tsx")

	if len(docs) != 1 {
		t.Fatalf("expected 1 component, got %d", len(docs))
	}
	if docs[0].DisplayName != "Button" {
		t.Errorf("displayName = %q, want Button", docs[0].DisplayName)
	}
}

func TestParseIndexFileNamedFromDirectory(t *testing.T) {
	dir := writeProject(t, `
-- Card/index.tsx --
interface Props {
    title: string;
}

const Card = (props: Props) => null;
export default Card;
`)
	parser := newProjectParser(t, dir, docgen.Options{})
	docs := mustParse(t, parser, dir, "Card/index.tsx")

	if len(docs) != 1 {
		t.Fatalf("expected 1 component, got %d", len(docs))
	}
	if docs[0].DisplayName != "Card" {
		t.Errorf("displayName = %q, want Card", docs[0].DisplayName)
	}
}

func TestDisplayNameAssignmentWins(t *testing.T) {
	dir := writeProject(t, `
-- Button.tsx --
interface Props {
    label: string;
}

export const Button = (props: Props) => null;
Button.displayName = "FancyButton";
`)
	parser := newProjectParser(t, dir, docgen.Options{})
	docs := mustParse(t, parser, dir, "Button.tsx")

	if len(docs) != 1 {
		t.Fatalf("expected 1 component, got %d", len(docs))
	}
	if docs[0].DisplayName != "FancyButton" {
		t.Errorf("displayName = %q, want FancyButton", docs[0].DisplayName)
	}
}

func TestClassComponentStaticDisplayName(t *testing.T) {
	dir := writeProject(t, `
-- Alert.tsx --
interface AlertProps {
    message: string;
    severity?: string;
}

export class Alert {
    static displayName = "CoolAlert";
    constructor(props: AlertProps) {}
    props!: AlertProps;
    render() {
        return null;
    }
}
`)
	parser := newProjectParser(t, dir, docgen.Options{})
	docs := mustParse(t, parser, dir, "Alert.tsx")

	if len(docs) != 1 {
		t.Fatalf("expected 1 component, got %d", len(docs))
	}
	doc := docs[0]
	if doc.DisplayName != "CoolAlert" {
		t.Errorf("displayName = %q, want CoolAlert", doc.DisplayName)
	}
	names := doc.Props.Names()
	if len(names) != 2 || names[0] != "message" || names[1] != "severity" {
		t.Fatalf("prop order = %v, want [message severity]", names)
	}
}

func TestMappedTypeKeepsOriginalDocs(t *testing.T) {
	dir := writeProject(t, `
-- Chip.tsx --
interface FullProps {
    /** The chip label. */
    label: string;
    /** Ignored by Chip. */
    size: number;
}

type ChipProps = Pick<FullProps, "label">;

export function Chip(props: ChipProps) {
    return null;
}
`)
	parser := newProjectParser(t, dir, docgen.Options{})
	docs := mustParse(t, parser, dir, "Chip.tsx")

	if len(docs) != 1 {
		t.Fatalf("expected 1 component, got %d", len(docs))
	}
	doc := docs[0]
	if doc.Props.Len() != 1 {
		t.Fatalf("expected 1 prop, got %v", doc.Props.Names())
	}
	label, ok := doc.Props.Get("label")
	if !ok {
		t.Fatal("label prop missing")
	}
	if label.Description != "The chip label." {
		t.Errorf("label description = %q, want the original doc", label.Description)
	}
}

func TestNonComponentExportsSkipped(t *testing.T) {
	dir := writeProject(t, `
-- util.ts --
export const VERSION = "1.0.0";
export interface Shape {
    sides: number;
}
export function area(width: number, height: number): number {
    return width * height;
}
`)
	parser := newProjectParser(t, dir, docgen.Options{})
	docs := mustParse(t, parser, dir, "util.ts")

	// area is callable so its first parameter resolves as props; plain
	// values and types do not.
	for _, doc := range docs {
		if doc.DisplayName == "VERSION" || doc.DisplayName == "Shape" {
			t.Errorf("unexpected component %q", doc.DisplayName)
		}
	}
}

func TestMultipleExportsKeepSourceOrder(t *testing.T) {
	dir := writeProject(t, `
-- buttons.tsx --
interface Props {
    label: string;
}

export function Primary(props: Props) {
    return null;
}

export function Secondary(props: Props) {
    return null;
}

export function Tertiary(props: Props) {
    return null;
}
`)
	parser := newProjectParser(t, dir, docgen.Options{})
	docs := mustParse(t, parser, dir, "buttons.tsx")

	var names []string
	for _, doc := range docs {
		names = append(names, doc.DisplayName)
	}
	want := []string{"Primary", "Secondary", "Tertiary"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("component order = %v, want %v", names, want)
	}
}

func TestRawFilterDropsProps(t *testing.T) {
	dir := writeProject(t, `
-- Input.tsx --
interface BaseProps {
    id: string;
}
interface InputProps extends BaseProps {
    value: string;
}

export function Input(props: InputProps) {
    return null;
}
`)
	parser := newProjectParser(t, dir, docgen.Options{
		ItemFilter: func(item docgen.PropItem, comp *docgen.Component) bool {
			return item.Parent == nil || item.Parent.Name != "BaseProps"
		},
	})
	docs := mustParse(t, parser, dir, "Input.tsx")

	if len(docs) != 1 {
		t.Fatalf("expected 1 component, got %d", len(docs))
	}
	doc := docs[0]
	if _, ok := doc.Props.Get("id"); ok {
		t.Error("id should be filtered out by parent")
	}
	if _, ok := doc.Props.Get("value"); !ok {
		t.Error("value should survive the filter")
	}
}

func TestRawFilterByName(t *testing.T) {
	dir := writeProject(t, `
-- Badge.tsx --
interface BadgeProps {
    text: string;
    internalState: string;
}

export function Badge(props: BadgeProps) {
    return null;
}
`)
	parser := newProjectParser(t, dir, docgen.Options{
		RawFilter: func(sym *ast.Symbol, _ *shimchecker.Type, _ *docgen.Component) bool {
			return !strings.HasPrefix(sym.Name, "internal")
		},
	})
	docs := mustParse(t, parser, dir, "Badge.tsx")

	if len(docs) != 1 {
		t.Fatalf("expected 1 component, got %d", len(docs))
	}
	doc := docs[0]
	if _, ok := doc.Props.Get("internalState"); ok {
		t.Error("internalState should be dropped by the raw filter")
	}
	if _, ok := doc.Props.Get("text"); !ok {
		t.Error("text should survive the raw filter")
	}
}

func TestParseErrorsInSourceFail(t *testing.T) {
	dir := writeProject(t, `
-- Broken.tsx --
interface Props {
    label: string;
}

const wrong: number = "not a number";

export function Broken(props: Props) {
    return null;
}
`)
	parser := newProjectParser(t, dir, docgen.Options{})
	_, err := parser.Parse(filepath.Join(dir, "Broken.tsx"))
	if err == nil {
		t.Fatal("expected an error for a file with type errors")
	}
	if !strings.Contains(err.Error(), "TS") {
		t.Errorf("error should carry the diagnostic code, got: %v", err)
	}
}

func TestParseMissingFileFails(t *testing.T) {
	dir := writeProject(t, "")
	parser := newProjectParser(t, dir, docgen.Options{})
	_, err := parser.Parse(filepath.Join(dir, "Nope.tsx"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParseSeesFileEdits(t *testing.T) {
	dir := writeProject(t, `
-- Button.tsx --
interface Props {
    label: string;
}
export function Button(props: Props) {
    return null;
}
`)
	parser := newProjectParser(t, dir, docgen.Options{})
	file := filepath.Join(dir, "Button.tsx")

	docs := mustParse(t, parser, dir, "Button.tsx")
	if len(docs) != 1 || docs[0].Props.Len() != 1 {
		t.Fatalf("unexpected initial docs: %+v", docs)
	}

	// Rewrite the file with an extra prop, stamped well past the slack
	// window, and parse again through the same parser.
	edited := `interface Props {
    label: string;
    disabled?: boolean;
}
export function Button(props: Props) {
    return null;
}
`
	if err := os.WriteFile(file, []byte(edited), 0o644); err != nil {
		t.Fatalf("rewriting source: %v", err)
	}
	future := time.Now().Add(5 * time.Second)
	if err := os.Chtimes(file, future, future); err != nil {
		t.Fatalf("bumping mtime: %v", err)
	}

	docs = mustParse(t, parser, dir, "Button.tsx")
	if len(docs) != 1 {
		t.Fatalf("expected 1 component after edit, got %d", len(docs))
	}
	if _, ok := docs[0].Props.Get("disabled"); !ok {
		t.Fatalf("edited prop missing, props = %v", docs[0].Props.Names())
	}
}

func TestIncludedFileErrorsFail(t *testing.T) {
	dir := writeProject(t, `
-- Button.tsx --
interface Props {
    label: string;
}
export function Button(props: Props) {
    return null;
}
-- globals.ts --
const wrong: number = "not a number";
export {};
`)
	parser := newProjectParser(t, dir, docgen.Options{Includes: []string{"globals.ts"}})
	_, err := parser.Parse(filepath.Join(dir, "Button.tsx"))
	if err == nil {
		t.Fatal("expected an error for a broken included file")
	}
	if !strings.Contains(err.Error(), "globals.ts") {
		t.Errorf("error should name the included file, got: %v", err)
	}
}

func TestParseFilesBatchesAndCaches(t *testing.T) {
	dir := writeProject(t, `
-- A.tsx --
interface Props {
    a: string;
}
export function A(props: Props) {
    return null;
}
-- B.tsx --
interface Props {
    b: string;
}
export function B(props: Props) {
    return null;
}
`)
	parser := newProjectParser(t, dir, docgen.Options{})
	files := []string{filepath.Join(dir, "A.tsx"), filepath.Join(dir, "B.tsx")}

	docs, err := parser.ParseFiles(files)
	if err != nil {
		t.Fatalf("ParseFiles: %v", err)
	}
	if len(docs) != 2 || docs[0].DisplayName != "A" || docs[1].DisplayName != "B" {
		t.Fatalf("unexpected docs: %+v", docs)
	}
	if parser.Cache().Len() != 2 {
		t.Errorf("cache should hold both files, has %d", parser.Cache().Len())
	}

	again, err := parser.ParseFiles(files)
	if err != nil {
		t.Fatalf("ParseFiles (cached): %v", err)
	}
	if len(again) != 2 || again[0].DisplayName != "A" || again[1].DisplayName != "B" {
		t.Fatalf("cached result differs: %+v", again)
	}
}
