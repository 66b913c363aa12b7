package editor

import "github.com/digitaltwin-run/pwa-sub000/pkg/geometry"

// pasteOffsetStep is the cascade distance between successive pastes of the
// same clipboard contents, and the grid pitch of the fallback sweep.
const pasteOffsetStep = 20.0

// maxCascadeSteps caps how far down the diagonal a paste may land before the
// grid sweep takes over.
const maxCascadeSteps = 64

// Placement decides where pasted components land. Each paste of the same
// clipboard generation cascades a further step down-right; steps whose slot
// would overlap an existing component are skipped, and when the diagonal runs
// off the canvas the whole canvas is swept for a free slot. Only when the
// canvas is genuinely full does the plain cascade offset apply.
type Placement struct {
	generation int
}

// Reset starts a new cascade; call on every Copy.
func (p *Placement) Reset() {
	p.generation = 0
}

// NextOffset returns the offset for the next paste of a group with the given
// source bounds, keeping the pasted bounds inside canvas and clear of the
// occupied rects whenever a free slot exists.
func (p *Placement) NextOffset(canvas, bounds geometry.Rect, occupied []geometry.Rect) geometry.Point2D {
	p.generation++
	plain := geometry.NewPoint2D(
		pasteOffsetStep*float64(p.generation),
		pasteOffsetStep*float64(p.generation),
	)

	for k := p.generation; k <= p.generation+maxCascadeSteps; k++ {
		d := pasteOffsetStep * float64(k)
		slot := bounds.Translate(d, d)
		if !canvas.ContainsRect(slot) {
			break
		}
		if !overlapsAny(slot, occupied) {
			p.generation = k
			return geometry.NewPoint2D(d, d)
		}
	}

	// Diagonal exhausted: sweep the canvas grid for the first free slot.
	for y := canvas.Y; y+bounds.Height <= canvas.Bottom(); y += pasteOffsetStep {
		for x := canvas.X; x+bounds.Width <= canvas.Right(); x += pasteOffsetStep {
			slot := geometry.NewRect(x, y, bounds.Width, bounds.Height)
			if !overlapsAny(slot, occupied) {
				return geometry.NewPoint2D(x-bounds.X, y-bounds.Y)
			}
		}
	}
	return plain
}

func overlapsAny(r geometry.Rect, occupied []geometry.Rect) bool {
	for _, o := range occupied {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}
