// Package selection tracks which canvas components are selected and answers
// hit-test queries against the document.
package selection

import (
	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/component"
	"github.com/digitaltwin-run/pwa-sub000/internal/svgdom"
	"github.com/digitaltwin-run/pwa-sub000/pkg/geometry"
)

// Core is the single source of truth for the current selection. Membership is
// keyed by element identity, and insertion order is preserved so operations
// like copy reproduce components in a stable order.
type Core struct {
	state *app.State

	ordered []*component.Component
	members map[*svgdom.Element]bool
}

// NewCore creates a selection tracker bound to the shared state.
func NewCore(state *app.State) *Core {
	c := &Core{
		state:   state,
		members: make(map[*svgdom.Element]bool),
	}
	// A replaced document invalidates every held element.
	state.On(app.EventDocumentReplaced, func(interface{}) {
		c.reset()
		c.emit()
	})
	return c
}

// Selected returns the selected components in insertion order. The returned
// slice is a copy.
func (c *Core) Selected() []*component.Component {
	out := make([]*component.Component, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Count returns the number of selected components.
func (c *Core) Count() int { return len(c.ordered) }

// IsSelected reports whether comp is in the selection.
func (c *Core) IsSelected(comp *component.Component) bool {
	if comp == nil {
		return false
	}
	return c.members[comp.Element()]
}

// Select adds comp to the selection. Selecting nil or an already-selected
// component is a no-op and emits nothing.
func (c *Core) Select(comp *component.Component) {
	if comp == nil || c.members[comp.Element()] {
		return
	}
	c.members[comp.Element()] = true
	c.ordered = append(c.ordered, comp)
	c.emit()
}

// Deselect removes comp from the selection. Deselecting nil or a component
// that is not selected is a no-op.
func (c *Core) Deselect(comp *component.Component) {
	if comp == nil || !c.members[comp.Element()] {
		return
	}
	delete(c.members, comp.Element())
	for i, sel := range c.ordered {
		if sel.Element() == comp.Element() {
			c.ordered = append(c.ordered[:i], c.ordered[i+1:]...)
			break
		}
	}
	c.emit()
}

// Toggle flips comp's membership.
func (c *Core) Toggle(comp *component.Component) {
	if comp == nil {
		return
	}
	if c.members[comp.Element()] {
		c.Deselect(comp)
	} else {
		c.Select(comp)
	}
}

// Clear empties the selection. Clearing an already-empty selection still
// emits, so dependent panels can reset on canvas clicks.
func (c *Core) Clear() {
	c.reset()
	c.emit()
}

// SelectAll selects every component in the document.
func (c *Core) SelectAll() {
	c.reset()
	for _, el := range c.state.Document().ElementsWithID() {
		comp := component.FromElement(el)
		c.members[el] = true
		c.ordered = append(c.ordered, comp)
	}
	c.emit()
}

// SelectInRect replaces the selection with the components whose bounds
// intersect rect. Bounds that merely touch the rect's edge are not selected.
func (c *Core) SelectInRect(rect geometry.Rect) {
	c.reset()
	for _, el := range c.state.Document().ElementsWithID() {
		comp := component.FromElement(el)
		if comp.Bounds().Intersects(rect) {
			c.members[el] = true
			c.ordered = append(c.ordered, comp)
		}
	}
	c.emit()
}

// ComponentAt finds the component whose bounds contain p, walking from the
// innermost hit element up to the nearest ancestor carrying a data-id. The
// topmost (last in document order) match wins. Returns nil on empty canvas
// space.
func (c *Core) ComponentAt(p geometry.Point2D) *component.Component {
	var hit *component.Component
	for _, el := range c.state.Document().ElementsWithID() {
		comp := component.FromElement(el)
		if comp.HitTest(p) {
			hit = comp
		}
	}
	return hit
}

// OwnerOf resolves the component owning el: el itself if it carries a
// data-id, otherwise its nearest such ancestor. Returns nil if no ancestor
// qualifies.
func (c *Core) OwnerOf(el *svgdom.Element) *component.Component {
	root := c.state.Document().Root()
	for e := el; e != nil && e != root; e = e.Parent() {
		if e.Attr("data-id") != "" {
			return component.FromElement(e)
		}
	}
	return nil
}

// Indicators returns one bounds rectangle per selected component, for the
// canvas overlay to draw.
func (c *Core) Indicators() []geometry.Rect {
	out := make([]geometry.Rect, 0, len(c.ordered))
	for _, comp := range c.ordered {
		out = append(out, comp.Bounds())
	}
	return out
}

func (c *Core) reset() {
	c.ordered = c.ordered[:0]
	c.members = make(map[*svgdom.Element]bool)
}

func (c *Core) emit() {
	c.state.Emit(app.EventSelectionChanged, app.SelectionChangedData{
		Components: c.Selected(),
		Count:      len(c.ordered),
	})
}
