package docgen

import (
	"fmt"
	"os"
	"time"
)

// mtimeSlack absorbs filesystem timestamp granularity. A source whose mtime
// trails the watermark by less than this is not treated as newer.
const mtimeSlack = time.Second

// Cache memoizes extraction results per requested file, guarded by a single
// modification-time watermark. The cache is intentionally conservative:
// when any requested file is newer than the watermark the whole cache is
// dropped, because a shared props type can affect every component that
// imports it and the import graph is not tracked.
type Cache struct {
	watermark  time.Time
	entries    map[string][]ComponentDoc
	generation uint64
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string][]ComponentDoc)}
}

// Len returns the number of cached files.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Generation counts cache flushes. Callers that mirror cached state (a
// compiler session's read cache, say) compare generations to learn that
// everything they derived from earlier file contents is suspect.
func (c *Cache) Generation() uint64 {
	return c.generation
}

// Invalidate drops every entry and resets the watermark.
func (c *Cache) Invalidate() {
	c.watermark = time.Time{}
	c.flush()
}

func (c *Cache) flush() {
	c.entries = make(map[string][]ComponentDoc)
	c.generation++
}

// Get looks up the cached documentation for file. A file modified after the
// watermark (plus slack) empties the cache before the lookup; the watermark
// itself only moves when results are stored, so repeated reads of a
// gradually aging file cannot creep it past a real change. Returned slices
// are shared with the cache and must not be mutated.
func (c *Cache) Get(file string) ([]ComponentDoc, bool, error) {
	fi, err := os.Stat(file)
	if err != nil {
		return nil, false, fmt.Errorf("stat %s: %w", file, err)
	}

	if fi.ModTime().After(c.watermark.Add(mtimeSlack)) {
		if len(c.entries) > 0 {
			c.flush()
		}
		return nil, false, nil
	}

	docs, ok := c.entries[file]
	return docs, ok, nil
}

// Put stores the documentation for file and commits the file's mtime into
// the watermark.
func (c *Cache) Put(file string, docs []ComponentDoc) {
	if fi, err := os.Stat(file); err == nil && fi.ModTime().After(c.watermark) {
		c.watermark = fi.ModTime()
	}
	c.entries[file] = docs
}

// GetOrParse returns the cached documentation for file, calling parse and
// storing the result on a miss.
func (c *Cache) GetOrParse(file string, parse func() ([]ComponentDoc, error)) ([]ComponentDoc, error) {
	docs, ok, err := c.Get(file)
	if err != nil {
		return nil, err
	}
	if ok {
		return docs, nil
	}
	docs, err = parse()
	if err != nil {
		return nil, err
	}
	c.Put(file, docs)
	return docs, nil
}
