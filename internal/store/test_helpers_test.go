package store

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/roach88/pns/internal/language"
	"github.com/roach88/pns/internal/names"
	"github.com/roach88/pns/internal/netunicode"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// createTestStore creates a store with the built-in tables plus TOY.
func createTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	reg := language.Default()
	reg.Register(toyTable())
	return New(append([]Option{WithLanguages(reg)}, opts...)...)
}

// toyTable splits sentences, then words.
func toyTable() language.Table {
	return language.Table{
		Code: "TOY",
		Rules: []language.Rule{
			language.MustRule(`\s*[.!?]\s*`),
			language.MustRule(`\s+`),
		},
	}
}

// compound builds the canonical compound of leaves, which must be given
// sorted and distinct.
func compound(leaves ...string) names.Name {
	return names.Name(netunicode.Encode(leaves))
}
