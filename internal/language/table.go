package language

import (
	"slices"
	"sync"
)

// Table is the ordered rule list of one language.
type Table struct {
	Code  string
	Rules []Rule
}

// Patterns returns the source pattern of every rule, in order.
func (t Table) Patterns() []string {
	out := make([]string, len(t.Rules))
	for i, r := range t.Rules {
		out[i] = r.Pattern()
	}
	return out
}

// Registry maps language codes to tables. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]Table
}

// NewRegistry creates a registry holding tables.
func NewRegistry(tables ...Table) *Registry {
	r := &Registry{tables: make(map[string]Table, len(tables))}
	for _, t := range tables {
		r.tables[t.Code] = t
	}
	return r
}

// Default returns a registry with the built-in tables.
func Default() *Registry {
	return NewRegistry(SAT(), EN())
}

// Register adds or replaces a table.
func (r *Registry) Register(t Table) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[t.Code] = t
}

// Lookup returns the table for code. An empty code or a code without a
// table reports false.
func (r *Registry) Lookup(code string) (Table, bool) {
	if code == "" {
		return Table{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[code]
	return t, ok
}

// Codes returns the registered codes, sorted.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.tables))
	for c := range r.tables {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}
