// Package svgdom provides an in-memory SVG element tree with attribute-order
// preservation and mutation observation. It is the document model the canvas
// editor operates on: components are elements carrying a data-id attribute,
// and every attribute or tree mutation is recorded so interested services can
// rescan once per batch of changes.
package svgdom

import (
	"strings"
)

// Attr is a single element attribute. Order of attributes is preserved
// through parse/serialize roundtrips.
type Attr struct {
	Name  string
	Value string
}

// Element is a node in the SVG tree.
type Element struct {
	Tag  string
	Text string // character data directly inside the element

	attrs    []Attr
	children []*Element
	parent   *Element
	doc      *Document
}

// NewElement creates a detached element with the given tag.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// Attr returns the value of the named attribute, or "" if absent.
func (e *Element) Attr(name string) string {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	for _, a := range e.attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Attrs returns a copy of the attribute list in document order.
func (e *Element) Attrs() []Attr {
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// SetAttr sets or replaces the named attribute and records a mutation.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.attrs {
		if a.Name == name {
			if a.Value == value {
				return
			}
			e.attrs[i].Value = value
			e.record(Mutation{Kind: MutationAttr, Target: e, Attr: name})
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
	e.record(Mutation{Kind: MutationAttr, Target: e, Attr: name})
}

// RemoveAttr removes the named attribute if present.
func (e *Element) RemoveAttr(name string) {
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			e.record(Mutation{Kind: MutationAttr, Target: e, Attr: name})
			return
		}
	}
}

// DataAttrs returns all data-* attributes keyed by their full name.
func (e *Element) DataAttrs() map[string]string {
	out := make(map[string]string)
	for _, a := range e.attrs {
		if strings.HasPrefix(a.Name, "data-") {
			out[a.Name] = a.Value
		}
	}
	return out
}

// Parent returns the parent element, or nil for a root or detached element.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// AppendChild attaches child to e, detaching it from any previous parent.
func (e *Element) AppendChild(child *Element) {
	if child == nil {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	child.setDocument(e.doc)
	e.children = append(e.children, child)
	e.record(Mutation{Kind: MutationChildAdded, Target: e, Child: child})
}

// RemoveChild detaches child from e. No-op if child is not a child of e.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			e.record(Mutation{Kind: MutationChildRemoved, Target: e, Child: child})
			child.parent = nil
			child.setDocument(nil)
			return
		}
	}
}

// Remove detaches the element from its parent. No-op for roots.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// Clone returns a deep copy of the element, detached from any parent or
// document.
func (e *Element) Clone() *Element {
	out := &Element{
		Tag:   e.Tag,
		Text:  e.Text,
		attrs: make([]Attr, len(e.attrs)),
	}
	copy(out.attrs, e.attrs)
	for _, c := range e.children {
		cc := c.Clone()
		cc.parent = out
		out.children = append(out.children, cc)
	}
	return out
}

// Walk visits e and its descendants depth-first. Returning false from the
// visitor stops descent into that subtree.
func (e *Element) Walk(visit func(*Element) bool) {
	if !visit(e) {
		return
	}
	for _, c := range e.children {
		c.Walk(visit)
	}
}

// TextContent returns the element's own text plus all descendant text,
// in document order.
func (e *Element) TextContent() string {
	var sb strings.Builder
	e.Walk(func(el *Element) bool {
		sb.WriteString(el.Text)
		return true
	})
	return strings.TrimSpace(sb.String())
}

func (e *Element) setDocument(doc *Document) {
	e.doc = doc
	for _, c := range e.children {
		c.setDocument(doc)
	}
}

func (e *Element) record(m Mutation) {
	if e.doc != nil {
		e.doc.record(m)
	}
}
