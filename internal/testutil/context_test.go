package testutil

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pns/internal/store"
)

// Both generators plug into the store's context seam.
var (
	_ store.ContextGenerator = (*FixedContextGenerator)(nil)
	_ store.ContextGenerator = (*SequentialContextGenerator)(nil)
)

func TestFixedContextGenerator(t *testing.T) {
	gen := NewFixedContextGenerator("doc")
	assert.Equal(t, "doc", gen.Generate())
	assert.Equal(t, "doc", gen.Generate())
}

func TestFixedContextGenerator_Default(t *testing.T) {
	assert.Equal(t, "test-context-default", NewFixedContextGenerator("").Generate())
}

func TestSequentialContextGenerator(t *testing.T) {
	gen := NewSequentialContextGenerator("doc")
	assert.Equal(t, int64(0), gen.Current())
	assert.Equal(t, "doc-1", gen.Generate())
	assert.Equal(t, "doc-2", gen.Generate())
	assert.Equal(t, int64(2), gen.Current())

	gen.Reset()
	assert.Equal(t, "doc-1", gen.Generate())
}

func TestSequentialContextGenerator_DefaultPrefix(t *testing.T) {
	assert.Equal(t, "ctx-1", NewSequentialContextGenerator("").Generate())
}

func TestSequentialContextGenerator_Concurrent(t *testing.T) {
	gen := NewSequentialContextGenerator("c")
	const n = 100

	var wg sync.WaitGroup
	ids := make(chan string, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- gen.Generate()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, n)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	for i := 1; i <= n; i++ {
		assert.True(t, seen[fmt.Sprintf("c-%d", i)])
	}
}
