package names

import (
	"errors"

	"github.com/roach88/pns/internal/netunicode"
)

// Horizon bounds the number of sub-names visited while validating one name.
const Horizon = 126

// ErrEmptyName is returned where a name is required but nothing survives
// canonicalization.
var ErrEmptyName = errors.New("names: empty name")

// Name is a leaf or compound public name.
type Name string

// String returns the name's wire form.
func (n Name) String() string {
	return string(n)
}

// IsCompound reports whether n is a complete netunicode sequence.
func (n Name) IsCompound() bool {
	return netunicode.IsEncoded(string(n))
}

// Members returns the decoded members of a compound name, or nil for a leaf.
func (n Name) Members() []Name {
	parts, err := netunicode.DecodeStrict(string(n))
	if err != nil || len(parts) == 0 {
		return nil
	}
	members := make([]Name, len(parts))
	for i, p := range parts {
		members[i] = Name(p)
	}
	return members
}

// Strings converts names to their string forms.
func Strings(ns []Name) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = string(n)
	}
	return out
}
