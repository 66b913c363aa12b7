package editor

import (
	"log"
	"strconv"
	"strings"

	sysclip "github.com/atotto/clipboard"

	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/component"
	"github.com/digitaltwin-run/pwa-sub000/internal/selection"
	"github.com/digitaltwin-run/pwa-sub000/internal/svgdom"
	"github.com/digitaltwin-run/pwa-sub000/pkg/geometry"
)

// ClipboardEntry is one copied component: enough to recreate it without the
// original element surviving.
type ClipboardEntry struct {
	Markup   string
	ID       string
	Type     string
	Position geometry.Point2D
}

// ClipboardManager implements copy, paste, and duplicate. The internal
// snapshot is the source of truth; the OS clipboard receives a markup mirror
// on copy so components can be pasted into external SVG tools, but paste
// never reads it back.
type ClipboardManager struct {
	state     *app.State
	core      *selection.Core
	placement Placement

	entries []ClipboardEntry

	// mirror is swappable for tests; headless CI has no system clipboard.
	mirror func(string) error
}

// NewClipboardManager creates a clipboard bound to the shared state and
// selection.
func NewClipboardManager(state *app.State, core *selection.Core) *ClipboardManager {
	return &ClipboardManager{
		state:  state,
		core:   core,
		mirror: sysclip.WriteAll,
	}
}

// IsEmpty reports whether the clipboard holds no components.
func (c *ClipboardManager) IsEmpty() bool { return len(c.entries) == 0 }

// Count returns the number of copied components.
func (c *ClipboardManager) Count() int { return len(c.entries) }

// Copy snapshots the current selection. Copying an empty selection leaves
// the clipboard untouched.
func (c *ClipboardManager) Copy() {
	selected := c.core.Selected()
	if len(selected) == 0 {
		return
	}

	c.entries = c.entries[:0]
	var mirror strings.Builder
	for _, comp := range selected {
		markup := comp.Element().OuterMarkup()
		c.entries = append(c.entries, ClipboardEntry{
			Markup:   markup,
			ID:       comp.ID(),
			Type:     comp.Type(),
			Position: comp.Position(),
		})
		mirror.WriteString(markup)
		mirror.WriteString("\n")
	}
	c.placement.Reset()

	if err := c.mirror(mirror.String()); err != nil {
		log.Printf("system clipboard unavailable: %v", err)
	}
}

// Paste recreates the clipboard contents with fresh ids, appends them to the
// document, selects them, and emits a pasted event. The whole group lands at
// one offset chosen by the placement so relative positions survive. Pasting
// an empty clipboard only raises a notification.
func (c *ClipboardManager) Paste() []*component.Component {
	if len(c.entries) == 0 {
		c.state.Notify("Clipboard is empty")
		return nil
	}

	type parsed struct {
		el    *svgdom.Element
		comp  *component.Component
		entry ClipboardEntry
	}
	items := make([]parsed, 0, len(c.entries))
	var group geometry.Rect
	for _, entry := range c.entries {
		el, err := svgdom.ParseFragment(entry.Markup)
		if err != nil {
			log.Printf("skipping unparseable clipboard entry %s: %v", entry.ID, err)
			continue
		}
		comp := component.FromElement(el)
		if len(items) == 0 {
			group = comp.Bounds()
		} else {
			group = group.Union(comp.Bounds())
		}
		items = append(items, parsed{el: el, comp: comp, entry: entry})
	}
	if len(items) == 0 {
		return nil
	}

	var occupied []geometry.Rect
	for _, el := range c.state.Document().ElementsWithID() {
		occupied = append(occupied, component.FromElement(el).Bounds())
	}
	root := c.state.Document().Root()
	offset := c.placement.NextOffset(canvasRect(root), group, occupied)

	pasted := make([]*component.Component, 0, len(items))
	for _, it := range items {
		it.comp.SetID(component.NewID(it.entry.Type))
		target := it.entry.Position.Add(offset)
		it.comp.SetPosition(target.X, target.Y)
		root.AppendChild(it.el)
		pasted = append(pasted, it.comp)
	}

	c.state.SetModified(true)
	c.state.Emit(app.EventComponentsPasted, app.ComponentsPastedData{
		Components: pasted,
		Count:      len(pasted),
	})

	c.core.Clear()
	for _, comp := range pasted {
		c.core.Select(comp)
	}
	c.state.Document().Flush()
	return pasted
}

// canvasRect reads the document size; a missing or zero dimension falls back
// to the default canvas.
func canvasRect(root *svgdom.Element) geometry.Rect {
	w := rootAttrFloat(root, "width")
	h := rootAttrFloat(root, "height")
	if w <= 0 {
		w = 800
	}
	if h <= 0 {
		h = 600
	}
	return geometry.NewRect(0, 0, w, h)
}

func rootAttrFloat(el *svgdom.Element, name string) float64 {
	f, _ := strconv.ParseFloat(el.Attr(name), 64)
	return f
}

// Duplicate copies and immediately pastes the selection.
func (c *ClipboardManager) Duplicate() []*component.Component {
	c.Copy()
	return c.Paste()
}
