package docgen

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeTempSource(t *testing.T, name string, mtime time.Time) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte("export {};\n"), 0o644))
	require.NoError(t, os.Chtimes(p, mtime, mtime))
	return p
}

func TestCacheHitAfterPut(t *testing.T) {
	now := time.Now()
	file := writeTempSource(t, "a.tsx", now)

	c := NewCache()
	_, ok, err := c.Get(file)
	require.NoError(t, err)
	require.False(t, ok)

	docs := []ComponentDoc{{DisplayName: "A"}}
	c.Put(file, docs)

	got, ok, err := c.Get(file)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, docs, got)
}

func TestCacheMissingFileErrors(t *testing.T) {
	c := NewCache()
	_, _, err := c.Get(filepath.Join(t.TempDir(), "missing.tsx"))
	require.Error(t, err)
}

func TestCacheInvalidatesOnNewerMtime(t *testing.T) {
	now := time.Now()
	a := writeTempSource(t, "a.tsx", now)
	b := writeTempSource(t, "b.tsx", now)

	c := NewCache()
	_, _, err := c.Get(a)
	require.NoError(t, err)
	c.Put(a, []ComponentDoc{{DisplayName: "A"}})
	_, _, err = c.Get(b)
	require.NoError(t, err)
	c.Put(b, []ComponentDoc{{DisplayName: "B"}})
	require.Equal(t, 2, c.Len())

	// Touch one file well past the slack window: everything goes.
	newer := now.Add(5 * time.Second)
	require.NoError(t, os.Chtimes(a, newer, newer))

	_, ok, err := c.Get(a)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 0, c.Len())
}

func TestCacheKeepsEntriesWithinSlack(t *testing.T) {
	now := time.Now()
	a := writeTempSource(t, "a.tsx", now)
	b := writeTempSource(t, "b.tsx", now.Add(500*time.Millisecond))

	c := NewCache()
	_, _, err := c.Get(a)
	require.NoError(t, err)
	c.Put(a, []ComponentDoc{{DisplayName: "A"}})

	// b is newer than the watermark, but within the slack: a's entry stays.
	_, ok, err := c.Get(b)
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = c.Get(a)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCacheWatermarkDoesNotCreepOnReads(t *testing.T) {
	now := time.Now()
	file := writeTempSource(t, "a.tsx", now)

	c := NewCache()
	_, _, err := c.Get(file)
	require.NoError(t, err)
	c.Put(file, []ComponentDoc{{DisplayName: "A"}})

	// Age the file within the slack window and read it repeatedly. The
	// entry stays, and the watermark must not follow the mtime upward.
	within := now.Add(900 * time.Millisecond)
	require.NoError(t, os.Chtimes(file, within, within))
	for range 3 {
		_, ok, err := c.Get(file)
		require.NoError(t, err)
		require.True(t, ok)
	}

	// A second touch past the ORIGINAL watermark's slack must flush. If
	// the reads above had dragged the watermark to the newer mtime, this
	// would still register as a hit.
	past := now.Add(1500 * time.Millisecond)
	require.NoError(t, os.Chtimes(file, past, past))

	_, ok, err := c.Get(file)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 0, c.Len())
}

func TestCacheGetOrParseCallsParseOncePerFile(t *testing.T) {
	now := time.Now()
	file := writeTempSource(t, "a.tsx", now)

	c := NewCache()
	calls := 0
	parse := func() ([]ComponentDoc, error) {
		calls++
		return []ComponentDoc{{DisplayName: "A"}}, nil
	}

	for range 3 {
		docs, err := c.GetOrParse(file, parse)
		require.NoError(t, err)
		require.Len(t, docs, 1)
	}
	require.Equal(t, 1, calls)
}

func TestCacheInvalidateClearsEverything(t *testing.T) {
	now := time.Now()
	file := writeTempSource(t, "a.tsx", now)

	c := NewCache()
	_, _, err := c.Get(file)
	require.NoError(t, err)
	c.Put(file, []ComponentDoc{{DisplayName: "A"}})

	c.Invalidate()
	require.Equal(t, 0, c.Len())

	_, ok, err := c.Get(file)
	require.NoError(t, err)
	require.False(t, ok)
}
