package editor

import (
	"github.com/digitaltwin-run/pwa-sub000/internal/selection"
	"github.com/digitaltwin-run/pwa-sub000/pkg/geometry"
)

// Marquee implements rubber-band selection. It is a two-state machine: idle
// until Begin, selecting until End or Cancel. All points are canvas
// coordinates.
type Marquee struct {
	core *selection.Core

	active bool
	anchor geometry.Point2D
	cursor geometry.Point2D
}

// NewMarquee creates a marquee bound to the selection core.
func NewMarquee(core *selection.Core) *Marquee {
	return &Marquee{core: core}
}

// Active reports whether a marquee drag is in progress.
func (m *Marquee) Active() bool { return m.active }

// Rect returns the current marquee rectangle. ok is false while idle, so
// overlays never draw a stale rectangle.
func (m *Marquee) Rect() (rect geometry.Rect, ok bool) {
	if !m.active {
		return geometry.Rect{}, false
	}
	return geometry.RectFromCorners(m.anchor, m.cursor), true
}

// Begin starts a marquee at p. Beginning while already selecting restarts
// from the new anchor.
func (m *Marquee) Begin(p geometry.Point2D) {
	m.active = true
	m.anchor = p
	m.cursor = p
}

// Update moves the free corner. Ignored while idle.
func (m *Marquee) Update(p geometry.Point2D) {
	if !m.active {
		return
	}
	m.cursor = p
}

// End finishes the marquee and applies it to the selection. A degenerate
// rectangle (a click without movement) clears the selection instead, which
// is what clicking empty canvas means.
func (m *Marquee) End() {
	if !m.active {
		return
	}
	rect := geometry.RectFromCorners(m.anchor, m.cursor)
	m.active = false

	if rect.Width == 0 && rect.Height == 0 {
		m.core.Clear()
		return
	}
	m.core.SelectInRect(rect)
}

// Cancel abandons the marquee without touching the selection.
func (m *Marquee) Cancel() {
	m.active = false
}
