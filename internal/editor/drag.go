package editor

import (
	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/component"
	"github.com/digitaltwin-run/pwa-sub000/internal/selection"
	"github.com/digitaltwin-run/pwa-sub000/pkg/geometry"
)

type dragItem struct {
	comp   *component.Component
	origin geometry.Point2D
}

// DragManager moves the selected components as a group. Positions are
// written to the document on every Update so the canvas redraw always shows
// the live state; there is no separate preview layer to reconcile.
type DragManager struct {
	state *app.State
	core  *selection.Core

	active bool
	start  geometry.Point2D
	items  []dragItem
}

// NewDragManager creates a drag manager bound to the shared state and
// selection.
func NewDragManager(state *app.State, core *selection.Core) *DragManager {
	return &DragManager{state: state, core: core}
}

// Active reports whether a drag is in progress.
func (d *DragManager) Active() bool { return d.active }

// Begin snapshots the selection's positions and starts a drag anchored at p
// (canvas coordinates). Returns false when nothing is selected.
func (d *DragManager) Begin(p geometry.Point2D) bool {
	selected := d.core.Selected()
	if len(selected) == 0 {
		return false
	}
	d.items = d.items[:0]
	for _, comp := range selected {
		d.items = append(d.items, dragItem{comp: comp, origin: comp.Position()})
	}
	d.start = p
	d.active = true
	return true
}

// Update moves every dragged component to its snapshot origin plus the
// cursor delta. Positions are absolute from the snapshot, so out-of-order or
// repeated updates cannot accumulate drift.
func (d *DragManager) Update(p geometry.Point2D) {
	if !d.active {
		return
	}
	delta := p.Sub(d.start)
	for _, item := range d.items {
		target := item.origin.Add(delta)
		item.comp.SetPosition(target.X, target.Y)
	}
}

// End commits the drag: components stay at their live positions, any
// component that lost its id gets a fresh one, and a moved event is emitted.
func (d *DragManager) End() {
	if !d.active {
		return
	}
	d.active = false

	moved := make([]app.MovedComponent, 0, len(d.items))
	changed := false
	for _, item := range d.items {
		comp := item.comp
		if comp.ID() == "" {
			comp.SetID(component.FallbackID(comp.Type()))
		}
		pos := comp.Position()
		if pos != item.origin {
			changed = true
		}
		moved = append(moved, app.MovedComponent{ID: comp.ID(), X: pos.X, Y: pos.Y})
	}
	d.items = d.items[:0]

	if changed {
		d.state.SetModified(true)
		d.state.Emit(app.EventComponentsMoved, app.ComponentsMovedData{Components: moved})
	}
	// Deliver the drag's position mutations so the component index catches up.
	d.state.Document().Flush()
}

// Cancel ends the drag in place. Components keep whatever position the last
// Update gave them; there is no rollback to the snapshot.
func (d *DragManager) Cancel() {
	d.End()
}
