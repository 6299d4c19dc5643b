package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestTransformedBoundingBoxAspectLock(t *testing.T) {
	b := NewBounds(V(0, 0), V(100, 50))

	got := TransformedBoundingBox(b, HandleBottomRight, V(50, 0), 0, true)
	if !near(got.Width, 150) || !near(got.Height, 75) {
		t.Fatalf("size = %vx%v, want 150x75", got.Width, got.Height)
	}
	if !near(got.MinX, 0) || !near(got.MinY, 0) {
		t.Errorf("min = (%v,%v), want anchor at origin", got.MinX, got.MinY)
	}
	if !near(got.ScaleX, 1.5) || !near(got.ScaleY, 1.5) {
		t.Errorf("scale = (%v,%v), want (1.5,1.5)", got.ScaleX, got.ScaleY)
	}
	if c := got.Center(); !c.NearlyEqual(V(75, 37.5), eps) {
		t.Errorf("center = %v, want (75,37.5)", c)
	}
}

func TestTransformedBoundingBoxAspectLockEveryCorner(t *testing.T) {
	b := NewBounds(V(0, 0), V(100, 50))
	deltas := []Vec{V(50, 0), V(30, -10), V(-20, 40), V(-250, -120), V(7, 90)}

	for _, h := range []Handle{HandleTopLeft, HandleTopRight, HandleBottomRight, HandleBottomLeft} {
		for _, d := range deltas {
			for _, r := range []float64{0, 0.7} {
				got := TransformedBoundingBox(b, h, d, r, true)
				if got.Height == 0 {
					t.Errorf("%s %v rot %v: zero height", h, d, r)
					continue
				}
				if ar := got.Width / got.Height; math.Abs(ar-2) > 1e-6 {
					t.Errorf("%s %v rot %v: ratio %v, want 2", h, d, r, ar)
				}
			}
		}
	}
}

func TestTransformedBoundingBoxFlip(t *testing.T) {
	b := NewBounds(V(0, 0), V(100, 50))

	tests := []struct {
		name   string
		handle Handle
		delta  Vec
		flipX  bool
		flipY  bool
		want   Bounds
	}{
		{"right past left", HandleRight, V(-150, 0), true, false, NewBounds(V(-50, 0), V(50, 50))},
		{"bottom past top", HandleBottom, V(0, -80), false, true, NewBounds(V(0, -30), V(100, 30))},
		{"corner both axes", HandleBottomRight, V(-150, -80), true, true, NewBounds(V(-50, -30), V(50, 30))},
		{"no flip", HandleLeft, V(20, 0), false, false, NewBounds(V(20, 0), V(80, 50))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TransformedBoundingBox(b, tt.handle, tt.delta, 0, false)
			if (got.ScaleX < 0) != tt.flipX || (got.ScaleY < 0) != tt.flipY {
				t.Errorf("scale = (%v,%v), want flipX=%v flipY=%v", got.ScaleX, got.ScaleY, tt.flipX, tt.flipY)
			}
			if !near(got.MinX, tt.want.MinX) || !near(got.MinY, tt.want.MinY) ||
				!near(got.Width, tt.want.Width) || !near(got.Height, tt.want.Height) {
				t.Errorf("bounds = %+v, want %+v", got.Bounds, tt.want)
			}
		})
	}
}

func TestTransformedBoundingBoxRotatedAnchorFixed(t *testing.T) {
	b := NewBounds(V(0, 0), V(100, 100))
	b.Rotation = math.Pi / 2

	anchor := b.Corners()[0]
	got := TransformedBoundingBox(b, HandleBottomRight, V(20, 30), b.Rotation, false)
	got.Rotation = b.Rotation

	if c := got.Corners()[0]; !c.NearlyEqual(anchor, 1e-6) {
		t.Errorf("anchor moved from %v to %v", anchor, c)
	}
}

func TestTransformedBoundingBoxCenterHandleTranslates(t *testing.T) {
	b := NewBounds(V(10, 10), V(40, 20))
	got := TransformedBoundingBox(b, HandleCenter, V(5, -5), 0, false)
	if got.Min() != V(15, 5) || got.Size() != V(40, 20) {
		t.Errorf("got %+v", got.Bounds)
	}
}

func TestRelativeTransformedBoundingBox(t *testing.T) {
	initial := NewBounds(V(0, 0), V(100, 50))
	shape := NewBounds(V(50, 0), V(50, 50))
	next := NewBounds(V(0, 0), V(200, 100))

	got := RelativeTransformedBoundingBox(next, initial, shape, false, false)
	if got.Min() != V(100, 0) || got.Size() != V(100, 100) {
		t.Errorf("unflipped = %+v", got)
	}

	got = RelativeTransformedBoundingBox(next, initial, shape, true, false)
	if got.Min() != V(0, 0) || got.Size() != V(100, 100) {
		t.Errorf("flipped = %+v", got)
	}
}

func TestHandleClassification(t *testing.T) {
	for _, h := range Handles {
		n := 0
		if h.IsCorner() {
			n++
		}
		if h.IsHorizontalEdge() {
			n++
		}
		if h.IsVerticalEdge() {
			n++
		}
		if n != 1 {
			t.Errorf("%s belongs to %d classes", h, n)
		}
		if !h.Valid() {
			t.Errorf("%s not valid", h)
		}
	}
	if Handle("middle").Valid() {
		t.Error("unknown handle reported valid")
	}
}
