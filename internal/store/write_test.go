package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pns/internal/names"
)

func TestStatementKeepsObjectPerContext(t *testing.T) {
	s := createTestStore(t)

	require.NoError(t, s.Statement("s", "p", "o", "ctx1"))
	require.NoError(t, s.Statement("s", "p", "o2", "ctx2"))

	objects, ok := s.Objects("s", "p")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"ctx1": "o", "ctx2": "o2"}, objects)

	// same context overwrites
	require.NoError(t, s.Statement("s", "p", "o3", "ctx1"))
	objects, _ = s.Objects("s", "p")
	assert.Equal(t, map[string]string{"ctx1": "o3", "ctx2": "o2"}, objects)
}

func TestStatementAbsentObject(t *testing.T) {
	s := createTestStore(t)
	require.NoError(t, s.Statement("question", "p", "", "ctx"))

	objects, ok := s.Objects("question", "p")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"ctx": ""}, objects)
}

func TestStatementCanonicalizesSubject(t *testing.T) {
	s := createTestStore(t)
	require.NoError(t, s.Statement("1:b,1:a,", "p", "o", "ctx"))

	objects, ok := s.Objects("1:a,1:b,", "p")
	require.True(t, ok)
	assert.Equal(t, "o", objects["ctx"])

	// lookups canonicalize too
	_, ok = s.Objects("1:b,1:a,", "p")
	assert.True(t, ok)
}

func TestStatementEmptySubject(t *testing.T) {
	s := createTestStore(t)

	err := s.Statement("", "p", "o", "ctx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyName)

	err = s.Index("", "ctx")
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Zero(t, s.Stats().Statements)
}

func TestIndexLeafSubject(t *testing.T) {
	s := createTestStore(t)
	require.NoError(t, s.Index("x", "ctx"))

	e, ok := s.Entry("x")
	require.True(t, ok)
	assert.Equal(t, []names.Name{"x"}, e.Subjects())
	assert.Equal(t, []string{"ctx"}, s.Routes("x"))
}

func TestIndexCompoundSubject(t *testing.T) {
	s := createTestStore(t)
	subject := compound("a", "x")
	require.NoError(t, s.Index(subject, "doc"))

	for _, pn := range []names.Name{"a", "x"} {
		e, ok := s.Entry(pn)
		require.True(t, ok, pn)
		assert.Equal(t, []names.Name{subject}, e.Subjects())

		n, ok := e.Name()
		require.True(t, ok)
		assert.Equal(t, subject, n)

		assert.Equal(t, []string{"doc"}, s.Routes(pn))
	}
	assert.Equal(t, []string{"doc"}, s.Routes(subject))
}

func TestIndexNestedSubNames(t *testing.T) {
	s := createTestStore(t)
	inner := compound("a", "b")
	subject := names.Name("8:1:a,1:b,,1:c,")
	require.NoError(t, s.Index(subject, "doc"))

	e, ok := s.Entry(inner)
	require.True(t, ok, "nested compounds are sub-names")
	assert.Equal(t, []names.Name{subject}, e.Subjects())
}

func TestIndexUnionsSubjects(t *testing.T) {
	s := createTestStore(t)
	s1 := compound("a", "x")
	s2 := compound("b", "x")
	require.NoError(t, s.Index(s1, "c1"))
	require.NoError(t, s.Index(s2, "c2"))

	e, ok := s.Entry("x")
	require.True(t, ok)
	assert.Equal(t, []names.Name{s1, s2}, e.Subjects())

	union, ok := e.Name()
	require.True(t, ok)
	want, _ := names.Union(s1, s2)
	assert.Equal(t, want, union)

	assert.Equal(t, []string{"c1", "c2"}, s.Routes("x"))
}

func TestRoutesAreDeduplicatedInOrder(t *testing.T) {
	s := createTestStore(t)
	require.NoError(t, s.Index("x", "c2"))
	require.NoError(t, s.Index("x", "c1"))
	require.NoError(t, s.Index("x", "c2"))
	require.NoError(t, s.Index("x", ""))

	assert.Equal(t, []string{"c2", "c1"}, s.Routes("x"))
}

func TestHorizonClosesUnion(t *testing.T) {
	s := createTestStore(t, WithHorizon(2))
	s1 := compound("a", "x")
	s2 := compound("b", "x")
	s3 := compound("c", "x")

	require.NoError(t, s.Statement(s1, "p", "o1", "ctx"))
	require.NoError(t, s.Statement(s2, "p", "o2", "ctx"))

	e, _ := s.Entry("x")
	assert.False(t, e.Closed())
	assert.Equal(t, []names.Name{s1, s2}, e.Subjects())

	require.NoError(t, s.Statement(s3, "p", "o3", "ctx"))
	e, _ = s.Entry("x")
	assert.True(t, e.Closed())
	assert.Nil(t, e.Subjects(), "closure discards the union")
	_, ok := e.Name()
	assert.False(t, ok)

	// the statement that closed the entry is still stored
	objects, ok := s.Objects(s3, "p")
	require.True(t, ok)
	assert.Equal(t, "o3", objects["ctx"])

	// other sub-names are unaffected
	e, _ = s.Entry("c")
	assert.Equal(t, []names.Name{s3}, e.Subjects())
}

func TestClosedEntryNeverReopens(t *testing.T) {
	s := createTestStore(t, WithHorizon(2))
	for _, other := range []string{"a", "b", "c", "d"} {
		require.NoError(t, s.Index(compound(other, "x"), "ctx"))
	}
	e, _ := s.Entry("x")
	require.True(t, e.Closed())

	require.NoError(t, s.Index("x", "later"))
	e, _ = s.Entry("x")
	assert.True(t, e.Closed())
	assert.Equal(t, []string{"ctx", "later"}, s.Routes("x"), "routes still grow")
}

func TestHorizonOverflowClosesTriggeringSubName(t *testing.T) {
	s := createTestStore(t, WithHorizon(2))
	big := compound("a", "b", "c")
	require.NoError(t, s.Statement(big, "p", "o", "ctx"))

	for _, pn := range []names.Name{"a", "b"} {
		e, ok := s.Entry(pn)
		require.True(t, ok)
		assert.Equal(t, []names.Name{big}, e.Subjects())
	}

	e, ok := s.Entry("c")
	require.True(t, ok)
	assert.True(t, e.Closed())

	require.NoError(t, s.Index("c", "other"))
	require.NoError(t, s.Index(compound("c", "z"), "other"))
	e, _ = s.Entry("c")
	assert.True(t, e.Closed())
	assert.Equal(t, 1, s.Stats().Closed)
}

func TestIndexSkipsSubjectWithEntry(t *testing.T) {
	s := createTestStore(t)
	require.NoError(t, s.Index(compound("a", "x"), "c1"))
	// "a" already has an entry as a sub-name, indexing it only adds a route
	require.NoError(t, s.Index("a", "c2"))

	e, _ := s.Entry("a")
	assert.Equal(t, []names.Name{compound("a", "x")}, e.Subjects())
	assert.Equal(t, []string{"c1", "c2"}, s.Routes("a"))
}

func TestIndexCanonicalizesSubject(t *testing.T) {
	s := createTestStore(t)
	ab := compound("a", "b")

	require.NoError(t, s.Index("1:b,1:a,", "c1"))
	require.NoError(t, s.Statement(ab, "p", "o", "c2"))

	for _, pn := range []names.Name{"a", "b"} {
		e, ok := s.Entry(pn)
		require.True(t, ok)
		assert.Equal(t, []names.Name{ab}, e.Subjects())
	}
	assert.Equal(t, []string{"c1", "c2"}, s.Routes(ab))
	assert.Empty(t, s.Routes("1:b,1:a,"))

	hits := s.Search("a")
	require.Len(t, hits, 1)
	assert.Equal(t, Hit{Subject: ab, Routes: []string{"c1", "c2"}}, hits[0])

	// a singleton compound collapses to its leaf
	require.NoError(t, s.Index("1:x,", "c3"))
	_, ok := s.Entry("1:x,")
	assert.False(t, ok)
	assert.Equal(t, []string{"c3"}, s.Routes("x"))
}
