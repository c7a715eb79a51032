package articulate

import (
	"strings"

	"github.com/roach88/pns/internal/language"
)

// Span is the result of Segment: either a leaf holding the text no rule
// could cut, or a boundary holding the fragments of the first rule that
// did and the depth at which to articulate them.
type Span struct {
	Text      string
	Fragments []string
	Depth     int
}

// IsLeaf reports whether no rule produced more than one fragment.
func (s Span) IsLeaf() bool {
	return len(s.Fragments) < 2
}

// Segment finds the articulation boundary of text, trying rules from depth
// on. A rule that leaves a single fragment narrows the text to it; a rule
// that leaves none is skipped.
func Segment(text string, rules []language.Rule, depth int) Span {
	text = strings.TrimSpace(text)
	for ; depth < len(rules); depth++ {
		fragments := rules[depth].Split(text)
		switch {
		case len(fragments) > 1:
			return Span{Text: text, Fragments: fragments, Depth: depth + 1}
		case len(fragments) == 1:
			text = fragments[0]
		}
	}
	return Span{Text: text, Depth: len(rules)}
}
