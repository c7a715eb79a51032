package harness

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/roach88/pns/internal/articulate"
	"github.com/roach88/pns/internal/language"
	"github.com/roach88/pns/internal/names"
	"github.com/roach88/pns/internal/store"
)

// AssertionContext provides what assertions need to inspect.
type AssertionContext struct {
	Store     *store.Store
	Languages *language.Registry
}

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Subject  string // What was inspected, e.g. the entry name
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s", e.Type)
	if e.Subject != "" {
		fmt.Fprintf(&buf, " %q", e.Subject)
	}
	fmt.Fprintf(&buf, "\n  Expected: %s\n  Actual: %s", e.Expected, e.Actual)
	return buf.String()
}

// EvaluateAssertions checks every assertion and returns the failure
// messages in order.
func EvaluateAssertions(assertions []Assertion, actx *AssertionContext) []string {
	var failures []string
	for i, a := range assertions {
		if err := evaluate(a, actx); err != nil {
			failures = append(failures, fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}
	return failures
}

func evaluate(a Assertion, actx *AssertionContext) error {
	switch a.Type {
	case AssertCanonical:
		return assertCanonical(a)
	case AssertArticulation:
		return assertArticulation(a, actx)
	case AssertEntry:
		return assertEntry(a, actx.Store)
	case AssertRoutes:
		return assertRoutes(a, actx.Store)
	case AssertObjects:
		return assertObjects(a, actx.Store)
	case AssertSearch:
		return assertSearch(a, actx.Store)
	case AssertStats:
		return assertStats(a, actx.Store)
	}
	return fmt.Errorf("unknown assertion type %q", a.Type)
}

// requireName returns the canonical name an assertion refers to.
func requireName(a Assertion) (names.Name, error) {
	n, ok := a.Name.Name()
	if !ok {
		return "", fmt.Errorf("%s assertion requires a non-empty name", a.Type)
	}
	return n, nil
}

func assertCanonical(a Assertion) error {
	n, _ := a.Name.Name()
	if string(n) != a.Expect {
		return &AssertionError{
			Type:     AssertCanonical,
			Expected: fmt.Sprintf("%q", a.Expect),
			Actual:   fmt.Sprintf("%q", n),
		}
	}
	return nil
}

func assertArticulation(a Assertion, actx *AssertionContext) error {
	table, ok := actx.Languages.Lookup(a.Lang)
	if !ok {
		return fmt.Errorf("articulation assertion: unknown language %q", a.Lang)
	}
	n, _ := articulate.New(table, articulate.WithHorizon(actx.Store.Horizon())).Name(a.Text)
	if string(n) != a.Expect {
		return &AssertionError{
			Type:     AssertArticulation,
			Subject:  a.Text,
			Expected: fmt.Sprintf("%q", a.Expect),
			Actual:   fmt.Sprintf("%q", n),
		}
	}
	return nil
}

func assertEntry(a Assertion, st *store.Store) error {
	n, err := requireName(a)
	if err != nil {
		return err
	}
	e, ok := st.Entry(n)
	if !ok {
		return &AssertionError{
			Type:     AssertEntry,
			Subject:  string(n),
			Expected: "an index entry",
			Actual:   "no entry",
		}
	}
	if a.Closed {
		if !e.Closed() {
			return &AssertionError{
				Type:     AssertEntry,
				Subject:  string(n),
				Expected: "closed",
				Actual:   fmt.Sprintf("open with subjects %v", e.Subjects()),
			}
		}
		return nil
	}
	if e.Closed() {
		return &AssertionError{
			Type:     AssertEntry,
			Subject:  string(n),
			Expected: fmt.Sprintf("subjects %v", a.Subjects),
			Actual:   "closed",
		}
	}
	if actual := names.Strings(e.Subjects()); !slices.Equal(actual, a.Subjects) {
		return &AssertionError{
			Type:     AssertEntry,
			Subject:  string(n),
			Expected: fmt.Sprintf("subjects %q", a.Subjects),
			Actual:   fmt.Sprintf("subjects %q", actual),
		}
	}
	return nil
}

func assertRoutes(a Assertion, st *store.Store) error {
	n, err := requireName(a)
	if err != nil {
		return err
	}
	if actual := st.Routes(n); !slices.Equal(actual, a.Contexts) {
		return &AssertionError{
			Type:     AssertRoutes,
			Subject:  string(n),
			Expected: fmt.Sprintf("contexts %q", a.Contexts),
			Actual:   fmt.Sprintf("contexts %q", actual),
		}
	}
	return nil
}

func assertObjects(a Assertion, st *store.Store) error {
	n, err := requireName(a)
	if err != nil {
		return err
	}
	actual, _ := st.Objects(n, names.Name(a.Predicate))
	if !maps.Equal(actual, a.Objects) {
		return &AssertionError{
			Type:     AssertObjects,
			Subject:  fmt.Sprintf("%s %s", n, a.Predicate),
			Expected: fmt.Sprintf("%v", a.Objects),
			Actual:   fmt.Sprintf("%v", actual),
		}
	}
	return nil
}

func assertSearch(a Assertion, st *store.Store) error {
	query := make([]names.Name, 0, len(a.Query))
	for _, q := range a.Query {
		if n, ok := q.Name(); ok {
			query = append(query, n)
		}
	}
	hits := st.Search(query...)
	actual := make([]string, len(hits))
	for i, h := range hits {
		actual[i] = string(h.Subject)
	}
	if !slices.Equal(actual, a.Subjects) {
		return &AssertionError{
			Type:     AssertSearch,
			Subject:  fmt.Sprintf("%v", query),
			Expected: fmt.Sprintf("subjects %q", a.Subjects),
			Actual:   fmt.Sprintf("subjects %q", actual),
		}
	}
	return nil
}

func assertStats(a Assertion, st *store.Store) error {
	if a.Stats == nil {
		return fmt.Errorf("stats assertion requires stats")
	}
	if actual := st.Stats(); actual != *a.Stats {
		return &AssertionError{
			Type:     AssertStats,
			Expected: fmt.Sprintf("%+v", *a.Stats),
			Actual:   fmt.Sprintf("%+v", actual),
		}
	}
	return nil
}
