package geometry

import (
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 10, 10),
			want: true,
		},
		{
			name: "contained",
			a:    NewRect(0, 0, 100, 100),
			b:    NewRect(10, 10, 5, 5),
			want: true,
		},
		{
			name: "disjoint",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(20, 20, 10, 10),
			want: false,
		},
		{
			name: "touching right edge does not intersect",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 0, 10, 10),
			want: false,
		},
		{
			name: "touching bottom edge does not intersect",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(0, 10, 10, 10),
			want: false,
		},
		{
			name: "touching corner does not intersect",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 10, 10, 10),
			want: false,
		},
		{
			name: "one pixel overlap",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(9, 9, 10, 10),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestRectFromCorners(t *testing.T) {
	r := RectFromCorners(NewPoint2D(30, 40), NewPoint2D(10, 20))
	want := NewRect(10, 20, 20, 20)
	if r != want {
		t.Errorf("RectFromCorners = %v, want %v", r, want)
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)
	if !outer.ContainsRect(NewRect(10, 10, 20, 20)) {
		t.Error("inner rect should be contained")
	}
	if outer.ContainsRect(NewRect(90, 90, 20, 20)) {
		t.Error("rect crossing the boundary should not be contained")
	}
	// Flush against the edge still counts as contained.
	if !outer.ContainsRect(NewRect(80, 80, 20, 20)) {
		t.Error("rect flush with the boundary should be contained")
	}
}

func TestAffineTransformApply(t *testing.T) {
	tr := Translation(5, -3)
	got := tr.Apply(NewPoint2D(1, 1))
	if got != NewPoint2D(6, -2) {
		t.Errorf("translation apply = %v", got)
	}

	sc := Scale(2, 3)
	got = sc.Apply(NewPoint2D(4, 5))
	if got != NewPoint2D(8, 15) {
		t.Errorf("scale apply = %v", got)
	}

	// Vector application ignores translation.
	got = tr.ApplyVector(NewPoint2D(1, 1))
	if got != NewPoint2D(1, 1) {
		t.Errorf("translation vector apply = %v", got)
	}
}

func TestAffineTransformInverse(t *testing.T) {
	tr := Translation(10, 20).Compose(Scale(2, 4))
	inv, ok := tr.Inverse()
	if !ok {
		t.Fatal("transform should be invertible")
	}

	p := NewPoint2D(3, 7)
	back := inv.Apply(tr.Apply(p))
	if back.Distance(p) > 1e-9 {
		t.Errorf("inverse roundtrip: got %v, want %v", back, p)
	}

	// Degenerate transform has no inverse.
	if _, ok := (AffineTransform{}).Inverse(); ok {
		t.Error("zero transform should not be invertible")
	}
}

func TestBoundingBox(t *testing.T) {
	points := []Point2D{{X: 3, Y: 9}, {X: -1, Y: 4}, {X: 7, Y: 0}}
	got := BoundingBox(points)
	want := NewRect(-1, 0, 8, 9)
	if got != want {
		t.Errorf("BoundingBox = %v, want %v", got, want)
	}

	if got := BoundingBox(nil); got != (Rect{}) {
		t.Errorf("BoundingBox(nil) = %v, want zero rect", got)
	}
}
