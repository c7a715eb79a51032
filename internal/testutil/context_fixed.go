package testutil

// FixedContextGenerator generates the same context id every time.
//
// This enables deterministic test execution and golden snapshot comparison:
// every document stated through it shares one context, so routes do not
// depend on random ids.
//
// Thread-safety: FixedContextGenerator is stateless and safe for concurrent use.
type FixedContextGenerator struct {
	id string
}

// NewFixedContextGenerator creates a new fixed context generator.
//
// If id is empty, Generate() returns "test-context-default".
func NewFixedContextGenerator(id string) *FixedContextGenerator {
	if id == "" {
		id = "test-context-default"
	}
	return &FixedContextGenerator{id: id}
}

// Generate returns the fixed context id.
//
// Implements store.ContextGenerator.
func (g *FixedContextGenerator) Generate() string {
	return g.id
}
