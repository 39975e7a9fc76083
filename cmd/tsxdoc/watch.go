package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/tsxdoc/tsxdoc/internal/docgen"
	"github.com/tsxdoc/tsxdoc/internal/watcher"
)

var watchedExtensions = []string{".ts", ".tsx", ".js", ".jsx"}

// runWatch extracts once, then re-extracts and reprints whenever a source
// under the input files' directories changes. One parser serves every change
// batch; its cache notices the changed mtimes and drops the compiler's read
// cache along with the stale results.
func runWatch(args []string) int {
	opts, files, ok := parseOptions("watch", args)
	if !ok {
		return 1
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not get working directory: %v\n", err)
		return 1
	}

	parser := docgen.NewParser(cwd, opts)
	extract := func() {
		start := time.Now()
		docs, err := parser.ParseFiles(files)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		fmt.Fprintf(os.Stderr, "extracted %d component(s) in %s\n",
			len(docs), time.Since(start).Round(time.Millisecond))
		if err := printDocs(docs); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}

	extract()

	dirs := uniqueDirs(files)
	w, err := watcher.New(dirs, watchedExtensions, watcher.DefaultDebounce, func(events []watcher.Event) {
		fmt.Fprintf(os.Stderr, "%d file(s) changed, re-extracting\n", len(events))
		extract()
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "stopping watch")
		w.Stop()
	}()

	fmt.Fprintf(os.Stderr, "watching %d directorie(s) for changes\n", len(dirs))
	if err := w.Watch(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func uniqueDirs(files []string) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, f := range files {
		dir := filepath.Dir(f)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
