package store

import (
	"maps"
	"slices"

	"github.com/roach88/pns/internal/names"
)

// Objects returns a copy of the context -> object mapping stored for
// (subject, predicate). The subject is canonicalized first.
func (s *Store) Objects(subject, predicate names.Name) (map[string]string, bool) {
	canonical, ok := names.CanonicalName(subject)
	if !ok {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	objects, ok := s.statements[Key{Subject: canonical, Predicate: predicate}]
	if !ok {
		return nil, false
	}
	return maps.Clone(objects), true
}

// Entry returns the index entry of n.
func (s *Store) Entry(n names.Name) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.indexes[n]
	if !ok {
		return Entry{}, false
	}
	return Entry{subjects: slices.Clone(e.subjects), closed: e.closed}, true
}

// Routes returns the contexts n was indexed in, in insertion order.
func (s *Store) Routes(n names.Name) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.routes[n])
}

// Stats counts the store's relations.
type Stats struct {
	Statements int `json:"statements" yaml:"statements"`
	Indexes    int `json:"indexes" yaml:"indexes"`
	Closed     int `json:"closed" yaml:"closed"`
	Routes     int `json:"routes" yaml:"routes"`
}

// Stats returns the current counts. Statements counts (subject, predicate,
// context) triples.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Indexes: len(s.indexes), Routes: len(s.routes)}
	for _, objects := range s.statements {
		st.Statements += len(objects)
	}
	for _, e := range s.indexes {
		if e.closed {
			st.Closed++
		}
	}
	return st
}

// Hit is one search result.
type Hit struct {
	Subject names.Name `json:"subject" yaml:"subject"`
	Routes  []string   `json:"routes" yaml:"routes"`
}

// Search returns the subjects whose index entries cover every leaf
// sub-name of every query name. A term with no entry, or a closed one,
// matches nothing. Hits are sorted by subject.
func (s *Store) Search(query ...names.Name) []Hit {
	var terms []names.Name
	for _, q := range query {
		_, field, ok := names.ValidateName(q, s.horizon)
		if !ok {
			continue
		}
		for _, n := range field.Names() {
			if !n.IsCompound() {
				terms = append(terms, n)
			}
		}
	}
	if len(terms) == 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []names.Name
	for i, term := range terms {
		e, ok := s.indexes[term]
		if !ok || e.closed {
			return nil
		}
		if i == 0 {
			matched = slices.Clone(e.subjects)
			continue
		}
		matched = slices.DeleteFunc(matched, func(n names.Name) bool {
			return !e.has(n)
		})
		if len(matched) == 0 {
			return nil
		}
	}

	hits := make([]Hit, len(matched))
	for i, subject := range matched {
		hits[i] = Hit{Subject: subject, Routes: slices.Clone(s.routes[subject])}
	}
	return hits
}
