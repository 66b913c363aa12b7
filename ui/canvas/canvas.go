// Package canvas provides the SVG editing canvas with pan, zoom, selection,
// and drag interaction.
package canvas

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/editor"
	"github.com/digitaltwin-run/pwa-sub000/pkg/geometry"
)

const (
	minZoom  = 0.1
	maxZoom  = 10.0
	zoomStep = 1.25
)

// dragMode says what the current pointer drag is doing.
type dragMode int

const (
	dragNone dragMode = iota
	dragMarquee
	dragComponents
)

// EditorCanvas displays the SVG document and routes pointer input to the
// editor services.
type EditorCanvas struct {
	widget.BaseWidget

	ed *editor.Editor

	raster  *fynecanvas.Raster
	zoom    float64
	docSize fyne.Size

	mode dragMode

	scroll  *zoomScroll
	content *draggableContent

	onZoomChange  func(zoom float64)
	onContextMenu func(p geometry.Point2D)
}

// zoomScroll wraps a scroll container but intercepts wheel for zoom.
type zoomScroll struct {
	widget.BaseWidget
	scroll *container.Scroll
	canvas *EditorCanvas
}

func newZoomScroll(content fyne.CanvasObject, canvas *EditorCanvas) *zoomScroll {
	scroll := container.NewScroll(content)
	scroll.Direction = container.ScrollBoth
	zs := &zoomScroll{scroll: scroll, canvas: canvas}
	zs.ExtendBaseWidget(zs)
	return zs
}

func (zs *zoomScroll) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		zs.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		zs.canvas.ZoomOut()
	}
}

func (zs *zoomScroll) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(zs.scroll)
}

// Offset returns the scroll container's current offset.
func (zs *zoomScroll) Offset() fyne.Position {
	return zs.scroll.Offset
}

func (zs *zoomScroll) Refresh() {
	zs.scroll.Refresh()
	zs.BaseWidget.Refresh()
}

func (zs *zoomScroll) Resize(size fyne.Size) {
	zs.scroll.Resize(size)
	zs.BaseWidget.Resize(size)
}

// draggableContent wraps the raster to receive pointer events.
type draggableContent struct {
	widget.BaseWidget
	canvas *EditorCanvas
	raster *fynecanvas.Raster
}

func newDraggableContent(ec *EditorCanvas, raster *fynecanvas.Raster) *draggableContent {
	dc := &draggableContent{canvas: ec, raster: raster}
	dc.ExtendBaseWidget(dc)
	return dc
}

func (dc *draggableContent) CreateRenderer() fyne.WidgetRenderer {
	return &draggableContentRenderer{content: dc}
}

func (dc *draggableContent) MinSize() fyne.Size {
	return dc.raster.MinSize()
}

// canvasPoint converts a pointer event position into canvas coordinates.
func (dc *draggableContent) canvasPoint(pos fyne.Position) geometry.Point2D {
	offset := dc.canvas.scroll.Offset()
	screen := geometry.NewPoint2D(
		float64(pos.X+offset.X),
		float64(pos.Y+offset.Y),
	)
	return dc.canvas.ed.Viewport.ScreenToCanvas(screen)
}

// Dragged starts a component drag when the press lands on a component, a
// marquee otherwise, and feeds the active one on subsequent events.
func (dc *draggableContent) Dragged(ev *fyne.DragEvent) {
	ec := dc.canvas
	p := dc.canvasPoint(ev.Position)

	if ec.mode == dragNone {
		if hit := ec.ed.Core.ComponentAt(p); hit != nil {
			if !ec.ed.Core.IsSelected(hit) {
				ec.ed.Core.Clear()
				ec.ed.Core.Select(hit)
			}
			if ec.ed.Drag.Begin(p) {
				ec.mode = dragComponents
			}
		} else {
			ec.ed.Marquee.Begin(p)
			ec.mode = dragMarquee
		}
	}

	switch ec.mode {
	case dragComponents:
		ec.ed.Drag.Update(p)
	case dragMarquee:
		ec.ed.Marquee.Update(p)
	}
	ec.Refresh()
}

func (dc *draggableContent) DragEnd() {
	ec := dc.canvas
	switch ec.mode {
	case dragComponents:
		ec.ed.Drag.End()
	case dragMarquee:
		ec.ed.Marquee.End()
	}
	ec.mode = dragNone
	ec.Refresh()
}

func (dc *draggableContent) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		dc.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		dc.canvas.ZoomOut()
	}
}

// Tapped selects the component under the pointer, or clears the selection on
// empty canvas.
func (dc *draggableContent) Tapped(ev *fyne.PointEvent) {
	// Fyne can deliver taps outside the widget bounds; reject those.
	size := dc.Size()
	if ev.Position.X < 0 || ev.Position.Y < 0 ||
		ev.Position.X > size.Width || ev.Position.Y > size.Height {
		return
	}

	ec := dc.canvas
	p := dc.canvasPoint(ev.Position)
	if hit := ec.ed.Core.ComponentAt(p); hit != nil {
		ec.ed.Core.Clear()
		ec.ed.Core.Select(hit)
	} else {
		ec.ed.Core.Clear()
	}
	ec.Refresh()
}

// TappedSecondary toggles the hit component in the selection, building up a
// multi-selection, and offers the context menu on empty space.
func (dc *draggableContent) TappedSecondary(ev *fyne.PointEvent) {
	size := dc.Size()
	if ev.Position.X < 0 || ev.Position.Y < 0 ||
		ev.Position.X > size.Width || ev.Position.Y > size.Height {
		return
	}

	ec := dc.canvas
	p := dc.canvasPoint(ev.Position)
	if hit := ec.ed.Core.ComponentAt(p); hit != nil {
		ec.ed.Core.Toggle(hit)
	} else if ec.onContextMenu != nil {
		ec.onContextMenu(p)
	}
	ec.Refresh()
}

type draggableContentRenderer struct {
	content *draggableContent
}

func (r *draggableContentRenderer) Layout(size fyne.Size) {
	r.content.raster.Resize(size)
}

func (r *draggableContentRenderer) MinSize() fyne.Size {
	return r.content.raster.MinSize()
}

func (r *draggableContentRenderer) Refresh() {
	r.content.raster.Refresh()
}

func (r *draggableContentRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.content.raster}
}

func (r *draggableContentRenderer) Destroy() {}

// NewEditorCanvas creates the canvas widget over a wired editor.
func NewEditorCanvas(ed *editor.Editor) *EditorCanvas {
	ec := &EditorCanvas{
		ed:   ed,
		zoom: 1.0,
	}

	ec.raster = fynecanvas.NewRaster(ec.draw)
	ec.raster.ScaleMode = fynecanvas.ImageScalePixels

	ec.content = newDraggableContent(ec, ec.raster)
	ec.scroll = newZoomScroll(ec.content, ec)

	// Redraw whenever the model changes underneath us.
	redraw := func(interface{}) { ec.Refresh() }
	ed.State.On(app.EventSelectionChanged, redraw)
	ed.State.On(app.EventComponentsMoved, redraw)
	ed.State.On(app.EventComponentsPasted, redraw)
	ed.State.On(app.EventComponentsDeleted, redraw)
	ed.State.On(app.EventComponentsBatchUpdated, redraw)
	ed.State.On(app.EventColorChanged, redraw)
	ed.State.On(app.EventDocumentReplaced, func(interface{}) {
		ec.updateContentSize()
	})

	ec.updateContentSize()
	ec.ExtendBaseWidget(ec)
	return ec
}

// Container returns the canvas container for embedding in layouts.
func (ec *EditorCanvas) Container() fyne.CanvasObject {
	return ec.scroll
}

// OnZoomChange sets a callback for zoom changes.
func (ec *EditorCanvas) OnZoomChange(callback func(zoom float64)) {
	ec.onZoomChange = callback
}

// OnContextMenu sets a callback for right-clicks on empty canvas. The point
// is in canvas coordinates.
func (ec *EditorCanvas) OnContextMenu(callback func(p geometry.Point2D)) {
	ec.onContextMenu = callback
}

// SetZoom sets the zoom level, clamped to the allowed range, and keeps the
// viewport mapping in sync.
func (ec *EditorCanvas) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	ec.zoom = zoom
	ec.ed.Viewport.Zoom = zoom
	ec.updateContentSize()

	if ec.onZoomChange != nil {
		ec.onZoomChange(zoom)
	}
}

// Zoom returns the current zoom level.
func (ec *EditorCanvas) Zoom() float64 {
	return ec.zoom
}

// ZoomIn increases the zoom level.
func (ec *EditorCanvas) ZoomIn() {
	ec.SetZoom(ec.zoom * zoomStep)
}

// ZoomOut decreases the zoom level.
func (ec *EditorCanvas) ZoomOut() {
	ec.SetZoom(ec.zoom / zoomStep)
}

// Refresh redraws the canvas.
func (ec *EditorCanvas) Refresh() {
	ec.raster.Refresh()
}

// documentSize reads the document's declared size, with a working default
// when the root omits it.
func (ec *EditorCanvas) documentSize() (w, h float64) {
	root := ec.ed.State.Document().Root()
	w = attrFloat(root, "width", 800)
	h = attrFloat(root, "height", 600)
	return w, h
}

// updateContentSize resizes the raster to the document size at current zoom.
func (ec *EditorCanvas) updateContentSize() {
	w, h := ec.documentSize()
	ec.docSize = fyne.NewSize(float32(w*ec.zoom), float32(h*ec.zoom))

	ec.raster.SetMinSize(ec.docSize)
	ec.raster.Resize(ec.docSize)
	if ec.content != nil {
		ec.content.Resize(ec.docSize)
		ec.content.Refresh()
	}
	ec.raster.Refresh()
	if ec.scroll != nil {
		ec.scroll.Refresh()
	}
}

// draw renders the document and the interaction overlays.
func (ec *EditorCanvas) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	fillBackground(output, ec.background())

	renderDocument(output, ec.ed.State.Document(), ec.zoom)

	for _, rect := range ec.ed.Core.Indicators() {
		drawSelectionIndicator(output, rect, ec.zoom)
	}
	if rect, ok := ec.ed.Marquee.Rect(); ok {
		drawMarqueeRect(output, rect, ec.zoom)
	}
	return output
}

// CreateRenderer implements fyne.Widget.
func (ec *EditorCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &editorCanvasRenderer{canvas: ec}
}

type editorCanvasRenderer struct {
	canvas *EditorCanvas
}

func (r *editorCanvasRenderer) Layout(size fyne.Size) {
	if r.canvas.scroll != nil {
		r.canvas.scroll.Resize(size)
	}
}

func (r *editorCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *editorCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *editorCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.scroll}
}

func (r *editorCanvasRenderer) Destroy() {}
