package names

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML builds nested span elements for n. A compound becomes a span whose
// pns attribute holds the name and whose children are its members; a leaf
// becomes a span holding its text.
func HTML(n Name) *html.Node {
	span := &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
	members := n.Members()
	if members == nil {
		span.AppendChild(&html.Node{Type: html.TextNode, Data: string(n)})
		return span
	}
	span.Attr = []html.Attribute{{Key: "pns", Val: string(n)}}
	for _, m := range members {
		span.AppendChild(HTML(m))
	}
	return span
}

// RenderHTML writes the HTML form of n to w.
func RenderHTML(w io.Writer, n Name) error {
	return html.Render(w, HTML(n))
}
