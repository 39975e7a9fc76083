package docgen

import (
	"fmt"
	"os"
	"sort"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/tspath"

	"github.com/tsxdoc/tsxdoc/internal/compiler"
)

// Parser extracts component documentation from source files. It owns a
// session (created lazily, since configuration discovery needs the first
// input paths) and a result cache keyed by requested file.
//
// A Parser is single-consumer, like the session underneath it.
type Parser struct {
	cwd   string
	opts  Options
	cache *Cache

	session     *Session
	helperAdded bool
	cacheGen    uint64
}

// NewParser returns a parser rooted at cwd. Nil filters accept everything.
func NewParser(cwd string, opts Options) *Parser {
	if opts.RawFilter == nil {
		opts.RawFilter = func(*ast.Symbol, *shimchecker.Type, *Component) bool { return true }
	}
	if opts.ItemFilter == nil {
		opts.ItemFilter = func(PropItem, *Component) bool { return true }
	}
	return &Parser{
		cwd:   tspath.NormalizePath(cwd),
		opts:  opts,
		cache: NewCache(),
	}
}

// Cache exposes the parser's result cache, mainly so long-running callers
// can invalidate it on external events.
func (p *Parser) Cache() *Cache { return p.cache }

// Parse extracts documentation for every component exported by file.
// Results come from the cache when the file is unchanged since they were
// produced.
func (p *Parser) Parse(file string) ([]ComponentDoc, error) {
	resolved := tspath.ResolvePath(p.cwd, file)
	return p.cache.GetOrParse(resolved, func() ([]ComponentDoc, error) {
		byFile, err := p.extract([]string{resolved})
		if err != nil {
			return nil, err
		}
		return byFile[resolved], nil
	})
}

// ParseFiles extracts documentation for several files in one pass, sharing
// a single program rebuild across the cache misses. Results keep the input
// file order, and within a file the export order.
func (p *Parser) ParseFiles(files []string) ([]ComponentDoc, error) {
	resolved := make([]string, 0, len(files))
	var misses []string
	cached := make(map[string][]ComponentDoc)
	for _, f := range files {
		r := tspath.ResolvePath(p.cwd, f)
		resolved = append(resolved, r)
		if _, ok := cached[r]; ok {
			continue
		}
		docs, ok, err := p.cache.Get(r)
		if err != nil {
			return nil, err
		}
		if ok {
			cached[r] = docs
		} else {
			misses = append(misses, r)
		}
	}

	if len(misses) > 0 {
		byFile, err := p.extract(misses)
		if err != nil {
			return nil, err
		}
		for _, f := range misses {
			p.cache.Put(f, byFile[f])
			cached[f] = byFile[f]
		}
	}

	var docs []ComponentDoc
	seen := make(map[string]bool)
	for _, f := range resolved {
		if seen[f] {
			continue
		}
		seen[f] = true
		docs = append(docs, cached[f]...)
	}
	return docs, nil
}

// ensureSession creates the session on first use and plants the helper
// script that defines the props query alias.
func (p *Parser) ensureSession(inputs []string) error {
	if p.session == nil {
		session, err := NewSession(p.cwd, inputs, p.opts)
		if err != nil {
			return err
		}
		p.session = session
	}
	if !p.helperAdded {
		if err := p.session.AddVirtual(syntheticHelperPath(p.cwd), helperSource); err != nil {
			return err
		}
		p.helperAdded = true
	}
	return nil
}

// exportedComponent is a discovered export awaiting its synthetic query.
type exportedComponent struct {
	Name string
	File string
	Pos  int
}

// extract runs the two-phase pipeline over the given resolved file paths:
// build a program covering the files, discover their exports, inject one
// synthetic query per export, rebuild, and read each component's props off
// the resolved query type.
func (p *Parser) extract(files []string) (map[string][]ComponentDoc, error) {
	if err := p.ensureSession(files); err != nil {
		return nil, err
	}

	// A flushed doc cache means file contents moved under us; the session's
	// disk read cache must not keep serving the old bytes.
	if gen := p.cache.Generation(); gen != p.cacheGen {
		p.cacheGen = gen
		p.session.InvalidateDisk()
	}

	for _, f := range files {
		if !p.session.FS().FileExists(f) {
			return nil, fmt.Errorf("no such source file: %s", f)
		}
	}

	program, err := p.session.Rebuild(files)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		sf := program.GetSourceFile(f)
		if sf == nil {
			return nil, fmt.Errorf("file %s is not part of the program", f)
		}
		if diags := compiler.Errors(compiler.FileDiagnostics(program, sf)); len(diags) > 0 {
			return nil, fmt.Errorf("%s has errors:\n%s", f, compiler.FormatDiagnostics(diags))
		}
	}
	for _, inc := range p.session.Includes() {
		sf := program.GetSourceFile(inc)
		if sf == nil {
			continue
		}
		if diags := compiler.Errors(compiler.FileDiagnostics(program, sf)); len(diags) > 0 {
			return nil, fmt.Errorf("included file %s has errors:\n%s", inc, compiler.FormatDiagnostics(diags))
		}
	}

	exports, err := p.discoverAll(program, files)
	if err != nil {
		return nil, err
	}

	jobs := make([]syntheticJob, 0, len(exports))
	for _, exp := range exports {
		job := newSyntheticJob(exp.Name, exp.File)
		if err := p.session.AddVirtual(job.FileName, job.Source()); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	defer func() {
		for _, job := range jobs {
			p.session.RemoveVirtual(job.FileName)
		}
	}()

	program, err = p.session.Rebuild(nil)
	if err != nil {
		return nil, err
	}
	checker, release := compiler.GetTypeChecker(program)
	defer release()

	byFile := make(map[string][]ComponentDoc, len(files))
	for _, f := range files {
		byFile[f] = []ComponentDoc{}
	}
	for _, job := range jobs {
		doc, ok := p.resolveJob(program, checker, job)
		if !ok {
			continue
		}
		byFile[job.TargetFile] = append(byFile[job.TargetFile], doc)
	}
	return byFile, nil
}

// discoverAll lists the exports of each file, ordered by export position.
func (p *Parser) discoverAll(program *shimcompiler.Program, files []string) ([]exportedComponent, error) {
	checker, release := compiler.GetTypeChecker(program)
	defer release()

	var exports []exportedComponent
	for _, f := range files {
		sf := program.GetSourceFile(f)
		fileExports := discoverExports(checker, sf)
		sort.Slice(fileExports, func(i, j int) bool {
			if fileExports[i].Pos != fileExports[j].Pos {
				return fileExports[i].Pos < fileExports[j].Pos
			}
			return fileExports[i].Name < fileExports[j].Name
		})
		exports = append(exports, fileExports...)
	}
	return exports, nil
}

// discoverExports returns the value exports of a module file whose target is
// declared in that same file. Re-exports document at their declaration site,
// not at every barrel that forwards them.
func discoverExports(checker *shimchecker.Checker, sf *ast.SourceFile) []exportedComponent {
	moduleSym := checker.GetSymbolAtLocation(sf.AsNode())
	if moduleSym == nil {
		return nil
	}

	var exports []exportedComponent
	for name, sym := range shimchecker.Checker_getExportsOfModule(checker, moduleSym) {
		resolved := sym
		if resolved.Flags&ast.SymbolFlagsAlias != 0 {
			resolved = checker.GetAliasedSymbol(resolved)
		}
		if resolved == nil || resolved.Flags&ast.SymbolFlagsValue == 0 {
			continue
		}
		if !declaredIn(resolved, sf) {
			continue
		}
		pos := 1 << 30
		if len(sym.Declarations) > 0 {
			pos = sym.Declarations[0].Pos()
		}
		exports = append(exports, exportedComponent{Name: name, File: sf.FileName(), Pos: pos})
	}
	return exports
}

func declaredIn(sym *ast.Symbol, sf *ast.SourceFile) bool {
	for _, decl := range sym.Declarations {
		if ast.GetSourceFileOfNode(decl) == sf {
			return true
		}
	}
	return false
}

// resolveJob turns one synthetic query into a ComponentDoc. Exports that are
// not components (the query resolves to never, or does not type-check at
// all) are skipped rather than reported as errors, and a panic from checker
// internals on an exotic type skips only that export.
func (p *Parser) resolveJob(program *shimcompiler.Program, checker *shimchecker.Checker, job syntheticJob) (doc ComponentDoc, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "tsxdoc: skipping export %q of %s: %v\n", job.ExportName, job.TargetFile, r)
			ok = false
		}
	}()

	jobSF := program.GetSourceFile(job.FileName)
	if jobSF == nil {
		return ComponentDoc{}, false
	}
	if compiler.HasErrors(compiler.FileDiagnostics(program, jobSF)) {
		return ComponentDoc{}, false
	}

	propsType := jobPropsType(checker, jobSF)
	if propsType == nil || propsType.Flags()&shimchecker.TypeFlagsNever != 0 {
		return ComponentDoc{}, false
	}

	targetSF := program.GetSourceFile(job.TargetFile)
	if targetSF == nil {
		return ComponentDoc{}, false
	}
	sym := exportSymbol(checker, targetSF, job.ExportName)
	if sym == nil {
		return ComponentDoc{}, false
	}

	comp := &Component{Name: job.ExportName, Symbol: sym, FileName: job.TargetFile}
	doc = ComponentDoc{
		DisplayName: resolveDisplayName(checker, comp, targetSF),
		Description: docForSymbol(checker, sym).Render(),
		Props:       extractProps(checker, propsType, comp, p.opts.RawFilter, p.opts.ItemFilter),
	}
	return doc, true
}

// jobPropsType finds the query alias in a job file and resolves its type.
func jobPropsType(checker *shimchecker.Checker, jobSF *ast.SourceFile) *shimchecker.Type {
	for _, stmt := range jobSF.Statements.Nodes {
		if stmt.Kind != ast.KindTypeAliasDeclaration {
			continue
		}
		decl := stmt.AsTypeAliasDeclaration()
		if decl.Name().Text() != jobPropsAlias {
			continue
		}
		return shimchecker.Checker_getTypeFromTypeNode(checker, decl.Type)
	}
	return nil
}

// exportSymbol resolves the named export of a module file to its target
// symbol.
func exportSymbol(checker *shimchecker.Checker, sf *ast.SourceFile, name string) *ast.Symbol {
	moduleSym := checker.GetSymbolAtLocation(sf.AsNode())
	if moduleSym == nil {
		return nil
	}
	sym := shimchecker.Checker_getExportsOfModule(checker, moduleSym)[name]
	if sym == nil {
		return nil
	}
	if sym.Flags&ast.SymbolFlagsAlias != 0 {
		sym = checker.GetAliasedSymbol(sym)
	}
	return sym
}
