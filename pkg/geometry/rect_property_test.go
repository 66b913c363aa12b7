//go:build property
// +build property

// Property-based tests for rectangle intersection semantics.
package geometry_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/digitaltwin-run/pwa-sub000/pkg/geometry"
)

func genRect() gopter.Gen {
	return gopter.CombineGens(
		gen.Float64Range(-500, 500),
		gen.Float64Range(-500, 500),
		gen.Float64Range(0, 200),
		gen.Float64Range(0, 200),
	).Map(func(vals []interface{}) geometry.Rect {
		return geometry.NewRect(
			vals[0].(float64), vals[1].(float64),
			vals[2].(float64), vals[3].(float64),
		)
	})
}

// TestIntersectsSymmetric verifies a.Intersects(b) == b.Intersects(a).
func TestIntersectsSymmetric(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("intersection is symmetric", prop.ForAll(
		func(a, b geometry.Rect) bool {
			return a.Intersects(b) == b.Intersects(a)
		},
		genRect(), genRect(),
	))

	properties.TestingRun(t)
}

// TestEdgeTouchingNeverIntersects verifies that a rectangle translated flush
// against another's edge never reports an intersection.
func TestEdgeTouchingNeverIntersects(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("edge-touching rectangles do not intersect", prop.ForAll(
		func(r geometry.Rect) bool {
			right := r.Translate(r.Width, 0)
			below := r.Translate(0, r.Height)
			return !r.Intersects(right) && !r.Intersects(below)
		},
		genRect(),
	))

	properties.TestingRun(t)
}

// TestContainedImpliesIntersects verifies strict containment implies
// intersection for rectangles with positive area.
func TestContainedImpliesIntersects(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("strictly contained rect intersects container", prop.ForAll(
		func(r geometry.Rect) bool {
			if r.Width < 3 || r.Height < 3 {
				return true // Too small to shrink strictly
			}
			inner := geometry.NewRect(r.X+1, r.Y+1, r.Width-2, r.Height-2)
			return r.Intersects(inner)
		},
		genRect(),
	))

	properties.TestingRun(t)
}
