// Package mapper maintains a live index of the canvas: which components
// exist, what properties each exposes, and what interaction targets are
// available. The index is rebuilt from the document; it is never edited
// directly.
package mapper

import (
	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/component"
	"github.com/digitaltwin-run/pwa-sub000/internal/svgdom"
	"github.com/digitaltwin-run/pwa-sub000/pkg/geometry"
)

// Parameter is one typed, access-flagged property of a mapped component.
type Parameter struct {
	Value    interface{} `json:"value"`
	Type     string      `json:"type"`
	Writable bool        `json:"writable"`
	Readable bool        `json:"readable"`
}

// Entry is the mapped view of one component: its identity, geometry, typed
// parameters, derived states, colors, and raw SVG attributes.
type Entry struct {
	ID            string               `json:"id"`
	Type          string               `json:"type"`
	Name          string               `json:"name"`
	Position      geometry.Point2D     `json:"position"`
	Width         float64              `json:"width"`
	Height        float64              `json:"height"`
	Parameters    map[string]Parameter `json:"parameters,omitempty"`
	States        map[string]bool      `json:"states,omitempty"`
	Colors        map[string]string    `json:"colors,omitempty"`
	SVGAttributes map[string]string    `json:"svgAttributes,omitempty"`
	Events        []string             `json:"events"`
}

// Mapper indexes the document's components. Every Scan clears the index and
// repopulates it from scratch, so scanning is idempotent and the index can
// never hold entries for elements that left the document.
type Mapper struct {
	state *app.State

	entries map[string]*Entry
	order   []string
}

// NewMapper builds the index and keeps it current: document mutations and
// document replacement both trigger a rescan.
func NewMapper(state *app.State) *Mapper {
	m := &Mapper{state: state}
	m.Scan()

	m.state.Document().Observe(m.onMutations)
	state.On(app.EventDocumentReplaced, func(interface{}) {
		m.state.Document().Observe(m.onMutations)
		m.Scan()
		m.state.Emit(app.EventPropertiesRescanned, m.Components())
	})
	return m
}

func (m *Mapper) onMutations([]svgdom.Mutation) {
	m.Scan()
	m.state.Emit(app.EventPropertiesRescanned, m.Components())
}

// Scan rebuilds the index from the current document.
func (m *Mapper) Scan() {
	m.entries = make(map[string]*Entry)
	m.order = m.order[:0]

	for _, el := range m.state.Document().ElementsWithID() {
		comp := component.FromElement(el)
		id := comp.ID()

		meta := comp.Metadata()
		name := meta.Name
		if name == "" {
			name = comp.Name()
		}
		bounds := comp.Bounds()
		params := extractParameters(el, meta)

		entry := &Entry{
			ID:            id,
			Type:          comp.Type(),
			Name:          name,
			Position:      geometry.NewPoint2D(bounds.X, bounds.Y),
			Width:         bounds.Width,
			Height:        bounds.Height,
			Parameters:    params,
			States:        extractStates(params),
			Colors:        extractColors(el),
			SVGAttributes: extractSVGAttributes(el),
			Events:        EventsForType(comp.Type()),
		}
		m.entries[id] = entry
		m.order = append(m.order, id)
	}
}

// Component returns the entry for id, or nil if no such component exists.
func (m *Mapper) Component(id string) *Entry {
	return m.entries[id]
}

// Components returns all entries in document order.
func (m *Mapper) Components() []*Entry {
	out := make([]*Entry, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.entries[id])
	}
	return out
}

// Count returns the number of indexed components.
func (m *Mapper) Count() int { return len(m.order) }

// EventsForType lists the interaction events a component type can emit.
// Unknown types still get the generic click event so they remain usable as
// interaction sources.
func EventsForType(componentType string) []string {
	switch componentType {
	case "button":
		return []string{"click", "press", "release"}
	case "switch":
		return []string{"click", "toggle"}
	case "slider":
		return []string{"change", "input"}
	case "sensor":
		return []string{"change", "threshold"}
	case "motor", "pump", "valve":
		return []string{"click", "start", "stop"}
	case "led", "display", "gauge", "counter":
		return []string{"click", "change"}
	default:
		return []string{"click"}
	}
}
