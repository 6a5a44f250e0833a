// Package document wraps a parsed HTML tree with the handful of queries
// the transaction pipeline needs: meta lookup by name, element iteration
// by id prefix, and attribute extraction. The parser (x/net/html) is
// forgiving, so even garbage input yields a usable (empty-ish) tree.
package document

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

// Element is a single element node within a Document.
type Element struct {
	node *html.Node
}

// Parse builds a Document from raw HTML. x/net/html recovers from
// malformed input, so this only fails on reader-level errors.
func Parse(rawHTML string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// MetaContent returns the content attribute of the first
// <meta name="..."> element matching name, or "".
func (d *Document) MetaContent(name string) string {
	var content string
	walk(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.DataAtom != atom.Meta {
			return true
		}
		if attr(n, "name") != name {
			return true
		}
		content = attr(n, "content")
		return false
	})
	return content
}

// ElementsByIDPrefix returns all elements whose id attribute starts with
// prefix, in document order.
func (d *Document) ElementsByIDPrefix(prefix string) []*Element {
	var out []*Element
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && strings.HasPrefix(attr(n, "id"), prefix) {
			out = append(out, &Element{node: n})
		}
		return true
	})
	return out
}

// Find returns the first element with the given tag whose attribute
// attrKey equals attrVal, or nil. An empty attrKey matches any element
// of that tag.
func (d *Document) Find(tag, attrKey, attrVal string) *Element {
	var found *Element
	walk(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != tag {
			return true
		}
		if attrKey != "" && attr(n, attrKey) != attrVal {
			return true
		}
		found = &Element{node: n}
		return false
	})
	return found
}

// Attr returns the value of the named attribute, or "".
func (e *Element) Attr(name string) string {
	if e == nil {
		return ""
	}
	return attr(e.node, name)
}

// FindAll returns all descendant elements with the given tag, in
// document order.
func (e *Element) FindAll(tag string) []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		walk(c, func(n *html.Node) bool {
			if n.Type == html.ElementNode && n.Data == tag {
				out = append(out, &Element{node: n})
			}
			return true
		})
	}
	return out
}

// walk visits n and its subtree depth-first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
