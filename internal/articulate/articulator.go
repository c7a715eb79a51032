package articulate

import (
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/pns/internal/language"
	"github.com/roach88/pns/internal/names"
)

// Chunk is a name together with the text it was articulated from.
type Chunk struct {
	Name names.Name `json:"name" yaml:"name"`
	Text string     `json:"text" yaml:"text"`
}

// Articulator articulates text with one rule table.
type Articulator struct {
	rules   []language.Rule
	horizon int
}

// Option configures an Articulator.
type Option func(*Articulator)

// WithHorizon bounds the names kept at each articulation level.
func WithHorizon(h int) Option {
	return func(a *Articulator) { a.horizon = h }
}

// New creates an Articulator for table.
func New(table language.Table, opts ...Option) *Articulator {
	a := &Articulator{rules: table.Rules, horizon: names.Horizon}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name articulates text into one canonical name. ok is false only when the
// text is empty or blank.
func (a *Articulator) Name(text string) (names.Name, bool) {
	text = norm.NFC.String(text)
	return names.Validate(a.articulate(text, 0), names.NewField(a.horizon))
}

// Chunks articulates text into names for fragments no longer than size
// bytes; longer fragments are cut further. Each level drops fragments whose
// names were all seen earlier at that level. A size <= 0 yields one chunk
// for the whole text.
func (a *Articulator) Chunks(text string, size int) []Chunk {
	text = norm.NFC.String(text)
	if size <= 0 {
		n, ok := names.Validate(a.articulate(text, 0), names.NewField(a.horizon))
		if !ok {
			return nil
		}
		return []Chunk{{Name: n, Text: text}}
	}
	return a.chunk(text, 0, size, nil)
}

// articulate returns the names of text's fragments at depth, unvalidated
// at the current level.
func (a *Articulator) articulate(text string, depth int) []string {
	span := Segment(text, a.rules, depth)
	if span.IsLeaf() {
		if span.Text == "" {
			return nil
		}
		return []string{span.Text}
	}
	if span.Depth >= len(a.rules) {
		return span.Fragments
	}

	field := names.NewField(a.horizon)
	out := make([]string, 0, len(span.Fragments))
	for _, fragment := range span.Fragments {
		if n, ok := names.Validate(a.articulate(fragment, span.Depth), field); ok {
			out = append(out, string(n))
		}
		if field.Exceeded() {
			break
		}
	}
	return out
}

func (a *Articulator) chunk(text string, depth, size int, out []Chunk) []Chunk {
	span := Segment(text, a.rules, depth)
	if span.IsLeaf() {
		if n, ok := names.Validate([]string{span.Text}, names.NewField(a.horizon)); ok {
			out = append(out, Chunk{Name: n, Text: span.Text})
		}
		return out
	}

	field := names.NewField(a.horizon)
	for _, fragment := range span.Fragments {
		if len(fragment) > size && span.Depth < len(a.rules) {
			out = a.chunk(fragment, span.Depth, size, out)
			continue
		}
		if n, ok := names.Validate(a.articulate(fragment, span.Depth), field); ok {
			out = append(out, Chunk{Name: n, Text: fragment})
		}
	}
	return out
}
