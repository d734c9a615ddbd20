// Package htmlhost implements the buttonstate host interfaces over an
// in-memory HTML document parsed with goquery.
package htmlhost

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/goliatone/go-buttonstate"
)

// Document is a parsed HTML document that bound buttons render into.
type Document struct {
	doc *goquery.Document
}

var _ buttonstate.Document = (*Document)(nil)

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("htmlhost: parse document: %w", err)
	}
	return &Document{doc: doc}, nil
}

// ParseString reads an HTML document from markup.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// FromDocument wraps an existing goquery document.
func FromDocument(doc *goquery.Document) *Document {
	return &Document{doc: doc}
}

// Goquery exposes the underlying goquery document.
func (d *Document) Goquery() *goquery.Document {
	return d.doc
}

// QuerySelectorAll returns every element matching selector in document
// order. Selectors that fail to compile match nothing.
func (d *Document) QuerySelectorAll(selector string) []buttonstate.Element {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	nodes := d.doc.FindMatcher(matcher).Nodes
	if len(nodes) == 0 {
		return nil
	}
	out := make([]buttonstate.Element, len(nodes))
	for i, node := range nodes {
		out[i] = Wrap(node)
	}
	return out
}

// Find returns the first element matching selector, or nil.
func (d *Document) Find(selector string) *Element {
	matches := d.QuerySelectorAll(selector)
	if len(matches) == 0 {
		return nil
	}
	return matches[0].(*Element)
}

// Contains reports whether el is attached below the document root. Elements
// from other hosts are never contained.
func (d *Document) Contains(el buttonstate.Element) bool {
	e, ok := el.(*Element)
	if !ok || e == nil || e.node == nil {
		return false
	}
	return d.doc.Contains(e.node)
}

// Detach removes el from its parent and returns the former parent so it can
// be reattached later. It returns nil when el is already detached.
func (d *Document) Detach(el *Element) *Element {
	if el == nil || el.node == nil || el.node.Parent == nil {
		return nil
	}
	parent := el.node.Parent
	parent.RemoveChild(el.node)
	return Wrap(parent)
}

// Attach appends el as the last child of parent.
func (d *Document) Attach(parent, el *Element) error {
	if parent == nil || el == nil {
		return fmt.Errorf("htmlhost: attach: parent and element are required")
	}
	if el.node.Parent != nil {
		return fmt.Errorf("htmlhost: attach: element is already attached")
	}
	parent.node.AppendChild(el.node)
	return nil
}

// Render serializes the whole document.
func (d *Document) Render() (string, error) {
	var buf bytes.Buffer
	for _, node := range d.doc.Nodes {
		if err := html.Render(&buf, node); err != nil {
			return "", fmt.Errorf("htmlhost: render document: %w", err)
		}
	}
	return buf.String(), nil
}

// WriteTo serializes the whole document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	out, err := d.Render()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, out)
	return int64(n), err
}
