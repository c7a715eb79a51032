package store

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/roach88/pns/internal/articulate"
	"github.com/roach88/pns/internal/names"
)

// articulator returns an articulator for the table currently registered
// under lang. Tables registered after the store was created are seen.
func (s *Store) articulator(lang string) (*articulate.Articulator, bool) {
	table, ok := s.languages.Lookup(lang)
	if !ok {
		return nil, false
	}
	return articulate.New(table, articulate.WithHorizon(s.horizon)), true
}

func (s *Store) drop(lang, context string) {
	s.metrics.dropped.Inc()
	s.logger.Debug("dropping articulation for unsupported language",
		"lang", lang,
		"context", context)
}

// ArticulateText articulates text into one name and states it with the
// language as predicate and the text as object. An unsupported language is
// a no-op.
func (s *Store) ArticulateText(text, lang, context string) error {
	a, ok := s.articulator(lang)
	if !ok {
		s.drop(lang, context)
		return nil
	}
	n, ok := a.Name(text)
	if !ok {
		return nil
	}
	return s.Statement(n, names.Name(lang), text, context)
}

// ArticulateTexts articulates text in chunks of at most chunk bytes and
// states every chunk with its literal text as object. An unsupported
// language is a no-op.
func (s *Store) ArticulateTexts(text, lang, context string, chunk int) error {
	a, ok := s.articulator(lang)
	if !ok {
		s.drop(lang, context)
		return nil
	}
	for _, c := range a.Chunks(text, chunk) {
		if err := s.Statement(c.Name, names.Name(lang), c.Text, context); err != nil {
			return err
		}
	}
	return nil
}

// ArticulateHTML parses an HTML document and articulates the text of every
// text node in chunks. Script and style content is skipped. Unlike the
// text methods, an unsupported language is an error.
func (s *Store) ArticulateHTML(r io.Reader, lang, context string, chunk int) error {
	if _, ok := s.articulator(lang); !ok {
		return fmt.Errorf("articulate HTML: %w: %q", ErrUnknownLanguage, lang)
	}
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("articulate HTML: %w", err)
	}

	var walk func(*html.Node) error
	walk = func(n *html.Node) error {
		switch n.Type {
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template:
				return nil
			}
		case html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				return s.ArticulateTexts(text, lang, context, chunk)
			}
			return nil
		case html.CommentNode:
			return nil
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(doc)
}
