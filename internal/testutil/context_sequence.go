package testutil

import (
	"fmt"
	"sync"
)

// SequentialContextGenerator numbers context ids: prefix-1, prefix-2, ...
//
// Unlike FixedContextGenerator, every document gets its own context, and
// Reset lets the same scenario run again with identical ids.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type SequentialContextGenerator struct {
	mu     sync.Mutex
	prefix string
	seq    int64
}

// NewSequentialContextGenerator creates a generator starting at 0.
//
// The first call to Generate() returns prefix + "-1". An empty prefix
// selects "ctx".
func NewSequentialContextGenerator(prefix string) *SequentialContextGenerator {
	if prefix == "" {
		prefix = "ctx"
	}
	return &SequentialContextGenerator{prefix: prefix}
}

// Generate increments the sequence and returns the next id.
//
// Implements store.ContextGenerator.
func (g *SequentialContextGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return fmt.Sprintf("%s-%d", g.prefix, g.seq)
}

// Current returns the number of ids generated so far.
func (g *SequentialContextGenerator) Current() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seq
}

// Reset restarts the sequence. After Reset(), the next id ends in "-1".
func (g *SequentialContextGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq = 0
}
