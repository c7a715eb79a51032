package store

import (
	"io"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/roach88/pns/internal/language"
	"github.com/roach88/pns/internal/names"
)

// Key addresses the objects of one subject and predicate.
type Key struct {
	Subject   names.Name
	Predicate names.Name
}

// Store is an in-memory statement store.
type Store struct {
	mu         sync.RWMutex
	statements map[Key]map[string]string
	indexes    map[names.Name]*Entry
	routes     map[names.Name][]string

	horizon   int
	languages *language.Registry
	logger    *slog.Logger
	metrics   *metrics
}

// Option configures a Store.
type Option func(*Store)

// WithHorizon sets the per-subject indexing bound. Values <= 0 keep
// names.Horizon.
func WithHorizon(h int) Option {
	return func(s *Store) {
		if h > 0 {
			s.horizon = h
		}
	}
}

// WithLanguages sets the rule tables used by the articulation methods.
func WithLanguages(r *language.Registry) Option {
	return func(s *Store) { s.languages = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithMetrics registers the store's counters with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *Store) { s.metrics = newMetrics(reg) }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		statements: make(map[Key]map[string]string),
		indexes:    make(map[names.Name]*Entry),
		routes:     make(map[names.Name][]string),
		horizon:    names.Horizon,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.languages == nil {
		s.languages = language.Default()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.metrics == nil {
		s.metrics = newMetrics(nil)
	}
	return s
}

// Horizon returns the per-subject indexing bound.
func (s *Store) Horizon() int {
	return s.horizon
}

// Languages returns the store's rule tables.
func (s *Store) Languages() *language.Registry {
	return s.languages
}
