// Package store keeps statements about public names and indexes them.
//
// A Store owns three relations:
//   - statements: (subject, predicate) -> context -> object
//   - indexes: every sub-name of an indexed subject -> the set of subjects
//     containing it, or a closed sentinel
//   - routes: name -> contexts it was indexed in, insertion ordered
//
// Entries are only ever added, or for index entries closed; nothing is
// removed.
//
// # Horizon
//
// Indexing one subject visits at most Horizon sub-names. The sub-name whose
// visit crosses the horizon has its index entry closed, and an entry whose
// subject set would grow past the horizon is closed instead of merged. A
// closed entry drops its subjects and never reopens; the statement that
// caused the closure is still stored.
//
// # Degradation
//
// Unsupported languages are dropped silently by ArticulateText and
// ArticulateTexts. The only hard failure is a subject with nothing left
// after canonicalization (ErrEmptyName).
//
// All methods are safe for concurrent use; one mutex guards the
// canonicalize, look up and update sequence of Index.
package store
