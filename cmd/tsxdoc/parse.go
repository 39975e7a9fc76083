package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/tsxdoc/tsxdoc/internal/docgen"
)

// stringList collects a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return fmt.Sprintf("%v", []string(*s)) }

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// parseOptions reads the shared parse/watch flag set and returns the
// remaining positional arguments as input files.
func parseOptions(name string, args []string) (docgen.Options, []string, bool) {
	flags := flag.NewFlagSet(name, flag.ExitOnError)

	var (
		tsconfigPath string
		includes     stringList
	)
	flags.StringVar(&tsconfigPath, "project", "", "Path to tsconfig.json (or use -p)")
	flags.StringVar(&tsconfigPath, "p", "", "Path to tsconfig.json (shorthand for --project)")
	flags.Var(&includes, "include", "Glob of extra sources to compile in (repeatable)")

	flags.Usage = func() {
		fmt.Printf("Usage: tsxdoc %s [flags] <files...>\n", name)
		fmt.Println()
		fmt.Println("Flags:")
		flags.PrintDefaults()
	}

	flags.Parse(args)

	files := flags.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input files")
		flags.Usage()
		return docgen.Options{}, nil, false
	}

	return docgen.Options{TSConfigPath: tsconfigPath, Includes: includes}, files, true
}

// runParse extracts documentation for the given files and prints it as a
// JSON array on stdout.
func runParse(args []string) int {
	opts, files, ok := parseOptions("parse", args)
	if !ok {
		return 1
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not get working directory: %v\n", err)
		return 1
	}

	start := time.Now()
	parser := docgen.NewParser(cwd, opts)
	docs, err := parser.ParseFiles(files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintf(os.Stderr, "extracted %d component(s) from %d file(s) in %s\n",
		len(docs), len(files), time.Since(start).Round(time.Millisecond))

	if err := printDocs(docs); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func printDocs(docs []docgen.ComponentDoc) error {
	if docs == nil {
		docs = []docgen.ComponentDoc{}
	}
	if err := json.MarshalWrite(os.Stdout, docs, jsontext.WithIndent("  ")); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Println()
	return nil
}
