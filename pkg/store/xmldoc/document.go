package xmldoc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/antchfx/xmlquery"
	"github.com/de-tools/itinerary-diff/pkg/models/domain"
)

// Load reads and parses the XML file at path. The file is closed before Load returns.
func Load(path string) (*xmlquery.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.ParseError{Path: path, Err: err}
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		var pe *domain.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Parse parses an XML document from r.
func Parse(r io.Reader) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, &domain.ParseError{Err: err}
	}
	if Root(doc) == nil {
		return nil, &domain.ParseError{Err: fmt.Errorf("document has no root element")}
	}
	return doc, nil
}

// Root returns the document element of doc, or nil if there is none.
func Root(doc *xmlquery.Node) *xmlquery.Node {
	if doc == nil {
		return nil
	}
	if doc.Type == xmlquery.ElementNode {
		return doc
	}
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return n
		}
	}
	return nil
}

// Child returns the first direct child element of n named name.
// name must be a plain element name.
func Child(n *xmlquery.Node, name string) (*xmlquery.Node, bool) {
	c := xmlquery.FindOne(n, name)
	return c, c != nil
}

// Children returns all direct child elements of n named name, in document order.
func Children(n *xmlquery.Node, name string) []*xmlquery.Node {
	return xmlquery.Find(n, name)
}

// Attr returns the value of the attribute name on n and whether it is set.
func Attr(n *xmlquery.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
