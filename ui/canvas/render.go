package canvas

import (
	"image"
	"image/color"
	"log"
	"strconv"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/digitaltwin-run/pwa-sub000/internal/svgdom"
	"github.com/digitaltwin-run/pwa-sub000/pkg/colorutil"
)

// renderDocument rasterizes the SVG document into output at the given zoom.
// A document that fails to rasterize leaves the background visible; the
// error is logged once per draw rather than surfaced, since a half-typed
// attribute mid-edit is normal.
func renderDocument(output *image.RGBA, doc *svgdom.Document, zoom float64) {
	markup := doc.Markup()

	icon, err := oksvg.ReadIconStream(strings.NewReader(markup))
	if err != nil {
		log.Printf("rasterize canvas: %v", err)
		return
	}

	bounds := output.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	root := doc.Root()
	docW := attrFloat(root, "width", 800)
	docH := attrFloat(root, "height", 600)
	icon.SetTarget(0, 0, docW*zoom, docH*zoom)

	scanner := rasterx.NewScannerGV(w, h, output, bounds)
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)
}

// fillBackground paints the whole output with c.
func fillBackground(output *image.RGBA, c color.RGBA) {
	bounds := output.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			output.SetRGBA(x, y, c)
		}
	}
}

// background resolves the document's background color, defaulting to white.
func (ec *EditorCanvas) background() color.RGBA {
	root := ec.ed.State.Document().Root()
	if c, ok := colorutil.ParseHex(root.Attr("data-background")); ok {
		return c
	}
	return colorutil.White
}

func attrFloat(el *svgdom.Element, name string, fallback float64) float64 {
	v := strings.TrimSuffix(strings.TrimSpace(el.Attr(name)), "px")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return fallback
	}
	return f
}
