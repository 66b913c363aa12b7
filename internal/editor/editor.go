// Package editor implements the canvas editing services: marquee selection,
// group drag, clipboard, placement, and keyboard dispatch. Services share
// state through the application event bus; none of them talk to the UI layer
// directly.
package editor

import (
	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/selection"
)

// Editor wires the editing services around one document and selection.
type Editor struct {
	State     *app.State
	Core      *selection.Core
	Viewport  *Viewport
	Marquee   *Marquee
	Drag      *DragManager
	Clipboard *ClipboardManager
	Keys      *KeyboardShortcuts
}

// New builds a fully wired editor on top of the shared state.
func New(state *app.State) *Editor {
	core := selection.NewCore(state)
	e := &Editor{
		State:     state,
		Core:      core,
		Viewport:  NewViewport(),
		Marquee:   NewMarquee(core),
		Drag:      NewDragManager(state, core),
		Clipboard: NewClipboardManager(state, core),
	}
	e.Keys = NewKeyboardShortcuts(e)
	return e
}

// DeleteSelection removes the selected components from the document, clears
// the selection, and reports how many were deleted.
func (e *Editor) DeleteSelection() {
	selected := e.Core.Selected()
	if len(selected) == 0 {
		return
	}

	ids := make([]string, 0, len(selected))
	for _, comp := range selected {
		ids = append(ids, comp.ID())
		comp.Element().Remove()
	}
	e.Core.Clear()

	e.State.SetModified(true)
	e.State.Emit(app.EventComponentsDeleted, app.ComponentsDeletedData{
		DeletedCount: len(ids),
		ComponentIDs: ids,
	})
	e.State.Document().Flush()
	e.State.Notify("Deleted %d component(s)", len(ids))
}

// Escape cancels whichever transient interaction is active: a drag commits
// in place, a marquee is abandoned, and failing both the selection clears.
func (e *Editor) Escape() {
	switch {
	case e.Drag.Active():
		e.Drag.Cancel()
	case e.Marquee.Active():
		e.Marquee.Cancel()
	default:
		e.Core.Clear()
	}
}
