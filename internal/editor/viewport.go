package editor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/digitaltwin-run/pwa-sub000/pkg/geometry"
)

// Viewport maps between screen pixels and canvas (SVG user-unit)
// coordinates. Pointer input arrives in screen space; every editor service
// works in canvas space, so the inverse mapping is on the hot path of
// marquee and drag updates.
type Viewport struct {
	Zoom float64
	PanX float64
	PanY float64
}

// NewViewport returns an identity viewport.
func NewViewport() *Viewport {
	return &Viewport{Zoom: 1}
}

func (v *Viewport) matrix() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		v.Zoom, 0, v.PanX,
		0, v.Zoom, v.PanY,
		0, 0, 1,
	})
}

// CanvasToScreen maps a canvas point to screen space.
func (v *Viewport) CanvasToScreen(p geometry.Point2D) geometry.Point2D {
	var out mat.VecDense
	out.MulVec(v.matrix(), mat.NewVecDense(3, []float64{p.X, p.Y, 1}))
	return geometry.NewPoint2D(out.AtVec(0), out.AtVec(1))
}

// ScreenToCanvas maps a screen point into canvas space by inverting the
// viewport matrix. A degenerate matrix (zoom forced to zero) falls back to
// the input point unchanged.
func (v *Viewport) ScreenToCanvas(p geometry.Point2D) geometry.Point2D {
	var inv mat.Dense
	if err := inv.Inverse(v.matrix()); err != nil {
		return p
	}
	var out mat.VecDense
	out.MulVec(&inv, mat.NewVecDense(3, []float64{p.X, p.Y, 1}))
	return geometry.NewPoint2D(out.AtVec(0), out.AtVec(1))
}
