package panels

import (
	"image"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/library"
	"github.com/digitaltwin-run/pwa-sub000/internal/selection"
)

const thumbnailSize = 32

// LibraryPanel is the component palette. Each entry places a fresh instance
// of its definition onto the canvas.
type LibraryPanel struct {
	state *app.State
	core  *selection.Core
	lib   *library.Library

	box *fyne.Container

	// Where the next placed component lands; advances so repeated placements
	// do not stack.
	nextX, nextY float64
}

// NewLibraryPanel creates the palette over a loaded library.
func NewLibraryPanel(state *app.State, core *selection.Core, lib *library.Library) *LibraryPanel {
	lp := &LibraryPanel{
		state: state,
		core:  core,
		lib:   lib,
		nextX: 40,
		nextY: 40,
	}
	lp.box = container.NewVBox()
	lp.rebuild()
	return lp
}

// Container returns the panel for embedding.
func (lp *LibraryPanel) Container() fyne.CanvasObject {
	return container.NewVScroll(lp.box)
}

func (lp *LibraryPanel) rebuild() {
	heading := widget.NewLabel("Library")
	heading.TextStyle = fyne.TextStyle{Bold: true}
	objects := []fyne.CanvasObject{heading}

	for _, def := range lp.lib.Definitions() {
		def := def
		row := []fyne.CanvasObject{}
		if thumb := renderThumbnail(def); thumb != nil {
			img := fynecanvas.NewImageFromImage(thumb)
			img.FillMode = fynecanvas.ImageFillContain
			img.SetMinSize(fyne.NewSize(thumbnailSize, thumbnailSize))
			row = append(row, img)
		}
		row = append(row, widget.NewButton(def.Label, func() {
			lp.place(def.Type)
		}))
		objects = append(objects, container.NewHBox(row...))
	}

	lp.box.Objects = objects
	lp.box.Refresh()
}

func (lp *LibraryPanel) place(componentType string) {
	comp, err := lp.lib.Instantiate(componentType, lp.nextX, lp.nextY)
	if err != nil {
		lp.state.Notify("Cannot place %s: %v", componentType, err)
		return
	}
	lp.state.Document().Root().AppendChild(comp.Element())
	lp.state.Document().Flush()
	lp.state.SetModified(true)

	lp.core.Clear()
	lp.core.Select(comp)

	lp.nextX += 30
	lp.nextY += 30
	if lp.nextX > 400 {
		lp.nextX, lp.nextY = 40, 40
	}
}

// renderThumbnail rasterizes a definition's template at its natural size and
// scales it down to the palette thumbnail.
func renderThumbnail(def *library.Definition) image.Image {
	w, h := int(def.Width), int(def.Height)
	if w <= 0 || h <= 0 {
		return nil
	}

	markup := `<svg xmlns="http://www.w3.org/2000/svg" width="` +
		strconv.Itoa(w) + `" height="` + strconv.Itoa(h) + `">` + def.Template + `</svg>`
	icon, err := oksvg.ReadIconStream(strings.NewReader(markup))
	if err != nil {
		log.Printf("thumbnail for %s: %v", def.Type, err)
		return nil
	}

	full := image.NewRGBA(image.Rect(0, 0, w, h))
	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, full, full.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	thumb := image.NewRGBA(image.Rect(0, 0, thumbnailSize, thumbnailSize))
	xdraw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), full, full.Bounds(), xdraw.Over, nil)
	return thumb
}
