// Package watcher reports batched source file changes for watch mode.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event represents a file change event.
type Event struct {
	Path string
	Op   string // "create", "write", "remove"
}

// DefaultDebounce groups rapid editor save bursts into one change batch.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches directory trees through fsnotify and delivers debounced
// change batches for files with matching extensions.
type Watcher struct {
	fsw        *fsnotify.Watcher
	extensions []string // e.g. [".ts", ".tsx"]
	debounce   time.Duration
	onChange   func(events []Event)

	mu      sync.Mutex
	pending []Event
	timer   *time.Timer
	stopCh  chan struct{}
}

// New creates a watcher over the given directory trees. Subdirectories are
// watched recursively; dependency and build directories are skipped.
func New(dirs []string, extensions []string, debounce time.Duration, onChange func(events []Event)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	w := &Watcher{
		fsw:        fsw,
		extensions: extensions,
		debounce:   debounce,
		onChange:   onChange,
		stopCh:     make(chan struct{}),
	}

	for _, dir := range dirs {
		if err := w.addTree(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if ignoredDir(filepath.Base(path)) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not watch %s: %v\n", path, err)
		}
		return nil
	})
}

// Watch runs the event loop until Stop is called.
func (w *Watcher) Watch() error {
	for {
		select {
		case <-w.stopCh:
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

// Stop stops the watcher and releases its OS watches.
func (w *Watcher) Stop() {
	close(w.stopCh)
	w.fsw.Close()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// New directories need their own watch before events inside them arrive.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !ignoredDir(filepath.Base(event.Name)) {
				w.addTree(event.Name)
			}
			return
		}
	}

	if !w.matchesExtension(event.Name) {
		return
	}

	var op string
	switch {
	case event.Op&fsnotify.Create != 0:
		op = "create"
	case event.Op&fsnotify.Write != 0:
		op = "write"
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		op = "remove"
	default:
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = append(w.pending, Event{Path: event.Name, Op: op})
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()
	if len(pending) > 0 {
		w.onChange(pending)
	}
}

func (w *Watcher) matchesExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range w.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func ignoredDir(base string) bool {
	switch base {
	case "node_modules", ".git", "dist", "build", ".next":
		return true
	}
	return false
}
