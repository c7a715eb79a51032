// Package articulate turns text into public names.
//
// Segment applies a table's rules in order, from the coarsest separator to
// the finest, skipping every rule that leaves the text in one piece. The
// first rule that cuts the text into several fragments is the articulation
// boundary; each fragment is then articulated with the finer rules that
// follow. Text that no rule cuts is a leaf name.
//
// An Articulator either folds the whole text into one canonical name
// (Name) or, for long documents, emits one name per fragment no longer
// than a chunk size together with the literal text it summarizes (Chunks).
package articulate
