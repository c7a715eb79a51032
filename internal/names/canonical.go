package names

import (
	"slices"

	"github.com/roach88/pns/internal/netunicode"
)

// Canonicalize returns the canonical name of item. Leaves already present
// in field are dropped; ok is false when nothing survives. A nil field
// behaves as a fresh one.
func Canonicalize(item Item, field *Field) (Name, bool) {
	if field == nil {
		field = NewField(0)
	}
	switch v := item.(type) {
	case nil:
		return "", false
	case Leaf:
		s := string(v)
		if s == "" || field.Has(s) {
			return "", false
		}
		field.mark(s)
		return Name(s), true
	case Compound:
		list := make([]string, 0, len(v))
		for _, member := range v {
			if n, ok := Canonicalize(member, field); ok {
				list = append(list, string(n))
			}
		}
		return collapse(list)
	case Pairs:
		// Entries are walked in key order so that dedup against the field is
		// deterministic.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		list := make([]string, 0, len(v))
		for _, k := range keys {
			if n, ok := Canonicalize(Compound{Leaf(k), v[k]}, field); ok {
				list = append(list, string(n))
			}
		}
		return collapse(list)
	default:
		return "", false
	}
}

// Canonical canonicalizes item in a fresh field.
func Canonical(item Item) (Name, bool) {
	return Canonicalize(item, NewField(0))
}

// Union returns the canonical set of the given names, keeping compound
// names whole.
func Union(ns ...Name) (Name, bool) {
	return Canonical(FromNames(ns...))
}

// collapse sorts list and applies the zero/one/many rule.
func collapse(list []string) (Name, bool) {
	switch len(list) {
	case 0:
		return "", false
	case 1:
		return Name(list[0]), true
	}
	slices.Sort(list)
	list = slices.Compact(list)
	if len(list) == 1 {
		return Name(list[0]), true
	}
	return Name(netunicode.Encode(list)), true
}
