package store

import (
	"fmt"
	"slices"

	"github.com/roach88/pns/internal/names"
)

// Statement stores object under (subject, predicate) for context and
// indexes the subject. The subject is canonicalized first; an absent
// object is stored as "".
func (s *Store) Statement(subject, predicate names.Name, object, context string) error {
	canonical, ok := names.CanonicalName(subject)
	if !ok {
		return fmt.Errorf("statement: %w", ErrEmptyName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key{Subject: canonical, Predicate: predicate}
	objects, ok := s.statements[key]
	if !ok {
		objects = make(map[string]string)
		s.statements[key] = objects
	}
	objects[context] = object
	s.metrics.statements.Inc()

	return s.index(canonical, context)
}

// Index records subject and every sub-name it canonically decomposes into.
// The subject is canonicalized first, so every spelling of a set lands on
// the same subject. A subject that already has an index entry only gains
// the route.
func (s *Store) Index(subject names.Name, context string) error {
	canonical, ok := names.CanonicalName(subject)
	if !ok {
		return fmt.Errorf("index: %w", ErrEmptyName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index(canonical, context)
}

func (s *Store) index(subject names.Name, context string) error {
	if subject == "" {
		return fmt.Errorf("index: %w", ErrEmptyName)
	}

	if _, indexed := s.indexes[subject]; !indexed {
		_, field, ok := names.ValidateName(subject, s.horizon)
		if !ok {
			return fmt.Errorf("index %q: %w", subject, ErrEmptyName)
		}
		overflow, exceeded := field.Overflow()
		for _, pn := range field.Names() {
			s.associate(pn, subject, exceeded && pn == overflow)
			s.route(pn, context)
		}
		if exceeded {
			s.logger.Debug("subject exceeded horizon",
				"subject", subject,
				"overflow", overflow,
				"horizon", s.horizon)
		}
	}

	s.route(subject, context)
	return nil
}

// associate adds subject to the entry of pn, closing the entry when
// overflow is set or when the subject set would grow past the horizon.
func (s *Store) associate(pn, subject names.Name, overflow bool) {
	e, ok := s.indexes[pn]
	if !ok {
		e = &Entry{}
		s.indexes[pn] = e
	}
	if e.closed {
		return
	}
	if overflow || (!e.has(subject) && len(e.subjects) >= s.horizon) {
		e.close()
		s.metrics.closed.Inc()
		s.logger.Debug("index entry closed", "name", pn, "subject", subject)
		return
	}
	e.add(subject)
}

// route appends context to the routes of n once. An empty context is not
// a route.
func (s *Store) route(n names.Name, context string) {
	if context == "" {
		return
	}
	routes := s.routes[n]
	if slices.Contains(routes, context) {
		return
	}
	s.routes[n] = append(routes, context)
}
