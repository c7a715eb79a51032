// Package names builds canonical public names.
//
// A public name is an opaque string of one of two kinds:
//   - a leaf, plain text that is not a netunicode sequence
//   - a compound, the netunicode encoding of a sorted, deduplicated
//     sequence of member names
//
// Because a compound is itself a string, compounds nest without a separate
// tree type. Canonical form makes equivalent inputs compare equal:
//   - members are sorted bytewise, so input order does not matter
//   - a member already seen in the Field is dropped
//   - a compound with one member collapses to that member
//   - a compound with no member is absent
//
// Canonicalize works on caller-built Item trees; Validate re-canonicalizes
// names that are already strings, counting every visit against the
// Field's horizon so that no single name can force unbounded work.
package names
