package main

import (
	"fmt"
	"os"
	"strings"
)

const version = "0.0.1-dev"

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		printUsage()
		return 1
	}

	switch os.Args[1] {
	case "parse":
		return runParse(os.Args[2:])
	case "watch":
		return runWatch(os.Args[2:])
	case "--version", "-v":
		fmt.Println("tsxdoc", version)
		return 0
	case "--help", "-h":
		printUsage()
		return 0
	default:
		// A leading flag or a file path means an implicit parse.
		if strings.HasPrefix(os.Args[1], "-") || fileExists(os.Args[1]) {
			return runParse(os.Args[1:])
		}
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		return 1
	}
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}

func printUsage() {
	fmt.Println("tsxdoc - component documentation extractor for TypeScript and TSX")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  tsxdoc parse [flags] <files...>   Extract component docs as JSON")
	fmt.Println("  tsxdoc watch [flags] <files...>   Re-extract and print on file changes")
	fmt.Println()
	fmt.Println("Global Flags:")
	fmt.Println("  --version, -v          Print version and exit")
	fmt.Println("  --help, -h             Print this help message")
	fmt.Println()
	fmt.Println("Parse Flags:")
	fmt.Println("  --project, -p <path>   Path to tsconfig.json (default: discovered upward from inputs)")
	fmt.Println("  --include <glob>       Extra sources to compile in (repeatable, e.g. 'types/**/*.d.ts')")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  tsxdoc parse src/components/Button.tsx")
	fmt.Println("  tsxdoc parse -p tsconfig.app.json src/components/*.tsx")
	fmt.Println("  tsxdoc watch --include 'types/**/*.d.ts' src/components/Button.tsx")
	fmt.Println()
}
