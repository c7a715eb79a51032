package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pns/internal/language"
	"github.com/roach88/pns/internal/names"
	"github.com/roach88/pns/internal/store"
)

// createAssertionContext builds a store where a and b share the subject
// "1:a,1:b," in context c1.
func createAssertionContext(t *testing.T) *AssertionContext {
	t.Helper()
	reg := language.Default()
	st := store.New(store.WithLanguages(reg))
	require.NoError(t, st.Statement("1:a,1:b,", "p", "o", "c1"))
	return &AssertionContext{Store: st, Languages: reg}
}

func TestAssertions_Pass(t *testing.T) {
	actx := createAssertionContext(t)
	stats := store.Stats{Statements: 1, Indexes: 2, Routes: 3}

	assertions := []Assertion{
		{Type: AssertCanonical, Name: nameOf(names.FromStrings("b", "a")), Expect: "1:a,1:b,"},
		{Type: AssertArticulation, Lang: "EN", Text: "cat", Expect: "cat"},
		{Type: AssertEntry, Name: nameOf(names.L("a")), Subjects: []string{"1:a,1:b,"}},
		{Type: AssertRoutes, Name: nameOf(names.L("b")), Contexts: []string{"c1"}},
		{Type: AssertObjects, Name: nameOf(names.FromStrings("b", "a")), Predicate: "p", Objects: map[string]string{"c1": "o"}},
		{Type: AssertSearch, Query: []NameSpec{nameOf(names.L("a")), nameOf(names.L("b"))}, Subjects: []string{"1:a,1:b,"}},
		{Type: AssertStats, Stats: &stats},
	}

	assert.Empty(t, EvaluateAssertions(assertions, actx))
}

func TestAssertions_Fail(t *testing.T) {
	actx := createAssertionContext(t)
	wrongStats := store.Stats{Statements: 2}

	tests := []struct {
		name      string
		assertion Assertion
		wantErr   string
	}{
		{"canonical", Assertion{Type: AssertCanonical, Name: nameOf(names.L("a")), Expect: "b"}, `Expected: "b"`},
		{"articulation", Assertion{Type: AssertArticulation, Lang: "EN", Text: "cat", Expect: "dog"}, `Actual: "cat"`},
		{"articulation unknown language", Assertion{Type: AssertArticulation, Lang: "XX", Text: "cat"}, `unknown language "XX"`},
		{"entry missing", Assertion{Type: AssertEntry, Name: nameOf(names.L("z"))}, "no entry"},
		{"entry not closed", Assertion{Type: AssertEntry, Name: nameOf(names.L("a")), Closed: true}, "open with subjects"},
		{"entry subjects", Assertion{Type: AssertEntry, Name: nameOf(names.L("a")), Subjects: []string{"a"}}, `subjects ["1:a,1:b,"]`},
		{"entry without name", Assertion{Type: AssertEntry}, "requires a non-empty name"},
		{"routes", Assertion{Type: AssertRoutes, Name: nameOf(names.L("a")), Contexts: []string{"c2"}}, `contexts ["c1"]`},
		{"objects", Assertion{Type: AssertObjects, Name: nameOf(names.L("a")), Predicate: "p", Objects: map[string]string{"c1": "o"}}, "Assertion failed: objects"},
		{"search", Assertion{Type: AssertSearch, Query: []NameSpec{nameOf(names.L("a"))}}, `subjects ["1:a,1:b,"]`},
		{"stats", Assertion{Type: AssertStats, Stats: &wrongStats}, "Assertion failed: stats"},
		{"stats missing", Assertion{Type: AssertStats}, "requires stats"},
		{"unknown", Assertion{Type: "trace_count"}, "unknown assertion type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failures := EvaluateAssertions([]Assertion{tt.assertion}, actx)
			require.Len(t, failures, 1)
			assert.Contains(t, failures[0], tt.wantErr)
			assert.Contains(t, failures[0], "assertions[0]")
		})
	}
}

func TestAssertionError_Format(t *testing.T) {
	err := &AssertionError{Type: AssertEntry, Subject: "x", Expected: "closed", Actual: "open"}
	assert.Equal(t, "Assertion failed: entry \"x\"\n  Expected: closed\n  Actual: open", err.Error())
}

func TestAssertClosedEntry(t *testing.T) {
	st := store.New(store.WithHorizon(2))
	for _, subject := range []names.Name{"1:a,1:x,", "1:b,1:x,", "1:c,1:x,"} {
		require.NoError(t, st.Statement(subject, "p", "o", "doc"))
	}
	actx := &AssertionContext{Store: st, Languages: language.Default()}

	failures := EvaluateAssertions([]Assertion{
		{Type: AssertEntry, Name: nameOf(names.L("x")), Closed: true},
		{Type: AssertEntry, Name: nameOf(names.L("x")), Subjects: []string{"1:a,1:x,"}},
	}, actx)
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], "assertions[1]")
	assert.Contains(t, failures[0], "Actual: closed")
}
