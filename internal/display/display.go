// Package display is the surface the menu is drawn on: a host HTML document
// with a named container element whose content is replaced wholesale.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document wraps a parsed host page.
type Document struct {
	doc *goquery.Document
}

// Parse reads a host document.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse host document: %w", err)
	}
	return &Document{doc: doc}, nil
}

// ParseString is Parse for an in-memory document.
func ParseString(html string) (*Document, error) {
	return Parse(strings.NewReader(html))
}

// Container returns the element whose id is exactly id.
func (d *Document) Container(id string) (*goquery.Selection, bool) {
	if id == "" {
		return nil, false
	}
	sel := d.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == id
	}).First()
	return sel, sel.Length() > 0
}

// HasContainer reports whether the container exists.
func (d *Document) HasContainer(id string) bool {
	_, ok := d.Container(id)
	return ok
}

// Mount replaces the container's content with fragment. It reports false,
// leaving the document untouched, when there is no such container.
func (d *Document) Mount(id, fragment string) bool {
	sel, ok := d.Container(id)
	if !ok {
		return false
	}
	sel.SetHtml(fragment)
	return true
}

// HTML serializes the whole document.
func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}

// Selection exposes the document for queries.
func (d *Document) Selection() *goquery.Selection {
	return d.doc.Selection
}
