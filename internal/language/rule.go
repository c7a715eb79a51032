package language

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule is one splitting pattern.
type Rule struct {
	re *regexp.Regexp
}

// NewRule compiles pattern into a Rule.
func NewRule(pattern string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("compile rule %q: %w", pattern, err)
	}
	return Rule{re: re}, nil
}

// MustRule is NewRule for patterns known to be valid.
func MustRule(pattern string) Rule {
	r, err := NewRule(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// Words builds the rule that splits on any of the given whole words,
// keeping the matched word as a fragment.
func Words(words ...string) Rule {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return MustRule(`(?:^|\s+)((?:` + strings.Join(quoted, `)|(?:`) + `))(?:$|\s+)`)
}

// Pattern returns the rule's source pattern.
func (r Rule) Pattern() string {
	if r.re == nil {
		return ""
	}
	return r.re.String()
}

// Split cuts text on every match of the rule. Fragments are trimmed and
// empty ones dropped; the first capture group of a match, when present and
// non-empty, is kept as a fragment between its neighbours.
func (r Rule) Split(text string) []string {
	if r.re == nil {
		return appendFragment(nil, text)
	}
	matches := r.re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return appendFragment(nil, text)
	}

	var out []string
	prev := 0
	for _, m := range matches {
		// an empty match splits nothing
		if m[0] == m[1] {
			continue
		}
		out = appendFragment(out, text[prev:m[0]])
		if len(m) >= 4 && m[2] >= 0 {
			out = appendFragment(out, text[m[2]:m[3]])
		}
		prev = m[1]
	}
	return appendFragment(out, text[prev:])
}

func appendFragment(out []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		out = append(out, s)
	}
	return out
}
