package store

import (
	"slices"

	"github.com/roach88/pns/internal/names"
)

// Entry is the index entry of one sub-name: the sorted set of subjects that
// contain it, or a closed sentinel.
type Entry struct {
	subjects []names.Name
	closed   bool
}

// Closed reports whether the entry was closed by the horizon.
func (e Entry) Closed() bool {
	return e.closed
}

// Subjects returns the subjects sharing the sub-name; nil once closed.
func (e Entry) Subjects() []names.Name {
	return slices.Clone(e.subjects)
}

// Name returns the canonical union of the entry's subjects. ok is false for
// a closed entry.
func (e Entry) Name() (names.Name, bool) {
	if e.closed {
		return "", false
	}
	return names.Union(e.subjects...)
}

// add inserts subject into the set and reports whether it was new.
func (e *Entry) add(subject names.Name) bool {
	i, found := slices.BinarySearch(e.subjects, subject)
	if found {
		return false
	}
	e.subjects = slices.Insert(e.subjects, i, subject)
	return true
}

// close drops the subjects and marks the entry closed.
func (e *Entry) close() {
	e.subjects = nil
	e.closed = true
}

func (e *Entry) has(subject names.Name) bool {
	_, found := slices.BinarySearch(e.subjects, subject)
	return found
}
