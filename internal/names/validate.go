package names

import (
	"math"

	"github.com/roach88/pns/internal/netunicode"
)

// Validate re-canonicalizes a sequence of names that are already strings.
// Each buffer that decodes completely as netunicode is treated as a
// compound and validated recursively; anything else is a leaf. Every
// surviving name is visited in field, and validation stops, returning what
// it has so far, once the field's count exceeds its horizon.
func Validate(ns []string, field *Field) (Name, bool) {
	if field == nil {
		field = NewField(0)
	}
	valid := make([]string, 0, len(ns))
	for _, buf := range ns {
		if buf == "" || field.Has(buf) {
			continue
		}
		members, err := netunicode.DecodeStrict(buf)
		if err != nil || len(members) == 0 {
			valid = append(valid, buf)
			field.visit(Name(buf))
		} else if n, ok := Validate(members, field); ok {
			// A compound that collapsed to one member was visited already.
			if !field.Has(string(n)) {
				field.visit(n)
			}
			valid = append(valid, string(n))
		}
		if field.Exceeded() {
			break
		}
	}
	return collapse(valid)
}

// ValidateName validates a single name in a fresh field with the given
// horizon and returns the canonical form together with the field.
func ValidateName(n Name, horizon int) (Name, *Field, bool) {
	field := NewField(horizon)
	members := n.Members()
	if members == nil {
		canonical, ok := Validate([]string{string(n)}, field)
		return canonical, field, ok
	}
	canonical, ok := Validate(Strings(members), field)
	return canonical, field, ok
}

// CanonicalName returns the canonical form of n without a horizon, so the
// result never loses members.
func CanonicalName(n Name) (Name, bool) {
	canonical, _, ok := ValidateName(n, math.MaxInt)
	return canonical, ok
}
