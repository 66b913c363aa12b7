package svgdom

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Parse reads an SVG document from r and returns it as a Document.
// The parser is lenient: it accepts minor markup sloppiness but returns an
// error for structurally broken input. Namespace prefixes other than xmlns
// are not round-tripped; the editor's attribute contract (data-*, geometry,
// style) is prefix-free.
func Parse(r io.Reader) (*Document, error) {
	root, err := parseTree(r)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("svgdom: no root element")
	}
	return NewDocument(root), nil
}

// ParseString parses an SVG document held in a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// ParseFragment parses a standalone markup fragment (e.g. a copied
// component's outer markup) and returns its root element, detached.
func ParseFragment(s string) (*Element, error) {
	root, err := parseTree(strings.NewReader(s))
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("svgdom: empty fragment")
	}
	return root, nil
}

func parseTree(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false

	var root *Element
	var current *Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svgdom: parse: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := NewElement(t.Name.Local)
			for _, a := range t.Attr {
				el.attrs = append(el.attrs, Attr{Name: attrName(a.Name), Value: a.Value})
			}
			if current == nil {
				if root != nil {
					return nil, fmt.Errorf("svgdom: multiple root elements")
				}
				root = el
			} else {
				el.parent = current
				current.children = append(current.children, el)
			}
			current = el

		case xml.EndElement:
			if current != nil {
				current = current.parent
			}

		case xml.CharData:
			if current != nil {
				current.Text += string(t)
			}
		}
	}

	if root != nil {
		root.Text = strings.TrimSpace(root.Text)
	}
	return root, nil
}

func attrName(n xml.Name) string {
	if n.Space == "xmlns" {
		return "xmlns:" + n.Local
	}
	return n.Local
}
