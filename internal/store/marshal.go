package store

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/roach88/pns/internal/names"
)

// StatementRecord is one (subject, predicate, context, object) row.
type StatementRecord struct {
	Subject   names.Name `json:"subject" yaml:"subject"`
	Predicate names.Name `json:"predicate" yaml:"predicate"`
	Context   string     `json:"context" yaml:"context"`
	Object    string     `json:"object" yaml:"object"`
}

// IndexRecord is one index entry.
type IndexRecord struct {
	Name     names.Name   `json:"name" yaml:"name"`
	Subjects []names.Name `json:"subjects,omitempty" yaml:"subjects,omitempty"`
	Closed   bool         `json:"closed,omitempty" yaml:"closed,omitempty"`
}

// RouteRecord lists the contexts of one name.
type RouteRecord struct {
	Name     names.Name `json:"name" yaml:"name"`
	Contexts []string   `json:"contexts" yaml:"contexts"`
}

// Snapshot is a deterministic copy of the store's relations: every slice
// is sorted bytewise by its leading fields.
type Snapshot struct {
	Statements []StatementRecord `json:"statements" yaml:"statements"`
	Indexes    []IndexRecord     `json:"indexes" yaml:"indexes"`
	Routes     []RouteRecord     `json:"routes" yaml:"routes"`
}

// Snapshot copies the store's relations.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Statements: make([]StatementRecord, 0, len(s.statements)),
		Indexes:    make([]IndexRecord, 0, len(s.indexes)),
		Routes:     make([]RouteRecord, 0, len(s.routes)),
	}
	for key, objects := range s.statements {
		for context, object := range objects {
			snap.Statements = append(snap.Statements, StatementRecord{
				Subject:   key.Subject,
				Predicate: key.Predicate,
				Context:   context,
				Object:    object,
			})
		}
	}
	for n, e := range s.indexes {
		snap.Indexes = append(snap.Indexes, IndexRecord{
			Name:     n,
			Subjects: slices.Clone(e.subjects),
			Closed:   e.closed,
		})
	}
	for n, contexts := range s.routes {
		snap.Routes = append(snap.Routes, RouteRecord{Name: n, Contexts: slices.Clone(contexts)})
	}

	slices.SortFunc(snap.Statements, func(a, b StatementRecord) int {
		return cmp.Or(
			cmp.Compare(a.Subject, b.Subject),
			cmp.Compare(a.Predicate, b.Predicate),
			cmp.Compare(a.Context, b.Context),
		)
	})
	slices.SortFunc(snap.Indexes, func(a, b IndexRecord) int {
		return cmp.Compare(a.Name, b.Name)
	})
	slices.SortFunc(snap.Routes, func(a, b RouteRecord) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return snap
}

// MarshalSnapshot encodes snap as JSON without HTML escaping, so names
// holding '<', '>' or '&' stay readable.
func MarshalSnapshot(snap Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(snap); err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
