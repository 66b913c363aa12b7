package canvas

import (
	"image"
	"image/color"

	"github.com/digitaltwin-run/pwa-sub000/pkg/colorutil"
	"github.com/digitaltwin-run/pwa-sub000/pkg/geometry"
)

const indicatorMargin = 2 // canvas units of breathing room around bounds

var (
	indicatorColor = colorutil.Blue
	marqueeColor   = colorutil.Yellow
)

// drawSelectionIndicator draws a solid outline with corner handles around a
// selected component's bounds.
func drawSelectionIndicator(output *image.RGBA, rect geometry.Rect, zoom float64) {
	grown := geometry.NewRect(
		rect.X-indicatorMargin, rect.Y-indicatorMargin,
		rect.Width+2*indicatorMargin, rect.Height+2*indicatorMargin,
	)
	x1 := int(grown.X * zoom)
	y1 := int(grown.Y * zoom)
	x2 := int(grown.Right() * zoom)
	y2 := int(grown.Bottom() * zoom)

	drawRectOutline(output, x1, y1, x2, y2, indicatorColor, 2, false)

	// Corner handles
	const handle = 3
	for _, c := range [][2]int{{x1, y1}, {x2, y1}, {x1, y2}, {x2, y2}} {
		fillSquare(output, c[0], c[1], handle, indicatorColor)
	}
}

// drawMarqueeRect draws the rubber-band rectangle as a dashed outline.
func drawMarqueeRect(output *image.RGBA, rect geometry.Rect, zoom float64) {
	x1 := int(rect.X * zoom)
	y1 := int(rect.Y * zoom)
	x2 := int(rect.Right() * zoom)
	y2 := int(rect.Bottom() * zoom)
	drawRectOutline(output, x1, y1, x2, y2, marqueeColor, 1, true)
}

// drawRectOutline draws a rectangle outline. With dashed set, pixels
// alternate on a 4-pixel cadence along each edge.
func drawRectOutline(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness int, dashed bool) {
	bounds := output.Bounds()

	on := func(a, b int) bool {
		return !dashed || (a+b)%4 < 2
	}
	set := func(x, y int) {
		if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
			output.SetRGBA(x, y, col)
		}
	}

	for t := 0; t < thickness; t++ {
		for x := x1; x <= x2; x++ {
			if on(x, y1) {
				set(x, y1+t)
			}
			if on(x, y2) {
				set(x, y2-t)
			}
		}
		for y := y1; y <= y2; y++ {
			if on(x1, y) {
				set(x1+t, y)
			}
			if on(x2, y) {
				set(x2-t, y)
			}
		}
	}
}

// fillSquare fills a square of the given half-size centered at (cx, cy).
func fillSquare(output *image.RGBA, cx, cy, half int, col color.RGBA) {
	bounds := output.Bounds()
	for y := cy - half; y <= cy+half; y++ {
		for x := cx - half; x <= cx+half; x++ {
			if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
				output.SetRGBA(x, y, col)
			}
		}
	}
}
