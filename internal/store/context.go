package store

import "github.com/google/uuid"

// ContextGenerator produces context ids for documents stated without one.
type ContextGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 context ids, so contexts
// sort by the time their document was stated.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
