package transform

import (
	"math"
	"testing"

	"github.com/inamate/whiteboard/internal/document"
	"github.com/inamate/whiteboard/internal/geom"
	"github.com/inamate/whiteboard/internal/input"
	"github.com/inamate/whiteboard/internal/shape"
)

const eps = 1e-6

var reg = shape.DefaultRegistry()

func box(id string, x, y, w, h float64) document.Shape {
	s := shape.BoxKind{}.Default()
	s.ID = id
	s.Point = geom.V(x, y)
	s.Size = geom.V(w, h)
	return s
}

// apply merges updates into shapes, keyed by id.
func apply(shapes []document.Shape, updates map[string]document.Partial) map[string]document.Shape {
	out := make(map[string]document.Shape, len(shapes))
	for _, s := range shapes {
		if p, ok := updates[s.ID]; ok {
			s = s.Merge(p)
		}
		out[s.ID] = s
	}
	return out
}

func TestResizeAspectLockedWithShift(t *testing.T) {
	b := box("box1", 0, 0, 100, 50)
	b.IsAspectRatioLocked = true
	shapes := []document.Shape{b}

	r := NewResize(reg, shapes, geom.HandleBottomRight)
	step := r.Step(geom.V(50, 0), input.Modifiers{Shift: true})
	got := apply(shapes, step.Updates)["box1"]

	if !got.Size.NearlyEqual(geom.V(150, 75), eps) {
		t.Errorf("size = %v, want (150,75)", got.Size)
	}
	if !got.Point.NearlyEqual(geom.V(0, 0), eps) {
		t.Errorf("point = %v, want (0,0)", got.Point)
	}
}

func TestResizeAspectLockedKeepsRatioOnEveryHandle(t *testing.T) {
	img := shape.ImageKind{}.Default()
	img.ID = "img"
	img.Point = geom.V(10, 10)
	img.Size = geom.V(160, 90)
	shapes := []document.Shape{img}

	deltas := []geom.Vec{geom.V(40, 0), geom.V(-30, 25), geom.V(0, -60), geom.V(-400, -300), geom.V(12, 70)}
	for _, h := range geom.Handles {
		for _, d := range deltas {
			step := NewResize(reg, shapes, h).Step(d, input.Modifiers{})
			got := apply(shapes, step.Updates)["img"]
			if ar := got.Size.X / got.Size.Y; math.Abs(ar-160.0/90.0) > eps {
				t.Errorf("%s %v: ratio %v, want %v", h, d, ar, 160.0/90.0)
			}
		}
	}
}

func TestResizeFlipNegatesRotationOnOneAxis(t *testing.T) {
	const rot = 0.5
	b := box("box1", 0, 0, 100, 50)
	b.Rotation = rot
	shapes := []document.Shape{b}

	tests := []struct {
		name     string
		handle   geom.Handle
		delta    geom.Vec
		rotation float64
		scale    geom.Vec
	}{
		{"x only", geom.HandleRight, geom.V(-300, 0).Rot(rot), -rot, geom.V(-1, 1)},
		{"y only", geom.HandleBottom, geom.V(0, -200).Rot(rot), -rot, geom.V(1, -1)},
		{"both axes", geom.HandleBottomRight, geom.V(-300, -200).Rot(rot), rot, geom.V(-1, -1)},
		{"no flip", geom.HandleBottomRight, geom.V(30, 30).Rot(rot), rot, geom.V(1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := NewResize(reg, shapes, tt.handle).Step(tt.delta, input.Modifiers{})
			got := apply(shapes, step.Updates)["box1"]
			if math.Abs(got.Rotation-tt.rotation) > eps {
				t.Errorf("rotation = %v, want %v", got.Rotation, tt.rotation)
			}
			if got.Scale != tt.scale {
				t.Errorf("scale = %v, want %v", got.Scale, tt.scale)
			}
		})
	}
}

func TestResizeGroupDistributesShapes(t *testing.T) {
	shapes := []document.Shape{box("a", 0, 0, 100, 100), box("b", 100, 0, 100, 100)}

	step := NewResize(reg, shapes, geom.HandleRight).Step(geom.V(200, 0), input.Modifiers{})
	got := apply(shapes, step.Updates)

	if a := got["a"]; !a.Point.NearlyEqual(geom.V(0, 0), eps) || !a.Size.NearlyEqual(geom.V(200, 100), eps) {
		t.Errorf("a = %v %v", a.Point, a.Size)
	}
	if b := got["b"]; !b.Point.NearlyEqual(geom.V(200, 0), eps) || !b.Size.NearlyEqual(geom.V(200, 100), eps) {
		t.Errorf("b = %v %v", b.Point, b.Size)
	}
}

func TestResizeGroupRotatedShapeKeepsRatio(t *testing.T) {
	a := box("a", 0, 0, 100, 50)
	a.Rotation = math.Pi / 2
	shapes := []document.Shape{a, box("b", 200, 0, 100, 100)}

	step := NewResize(reg, shapes, geom.HandleRight).Step(geom.V(100, 0), input.Modifiers{})
	got := apply(shapes, step.Updates)["a"]
	if ar := got.Size.X / got.Size.Y; math.Abs(ar-2) > eps {
		t.Errorf("rotated member ratio = %v, want 2", ar)
	}
	if got.Rotation != math.Pi/2 {
		t.Errorf("rotation changed to %v", got.Rotation)
	}
}

func TestResizeGroupLockedMemberStaysInPlace(t *testing.T) {
	a := box("a", 0, 0, 100, 100)
	a.IsAspectRatioLocked = true
	shapes := []document.Shape{a, box("b", 200, 0, 100, 50)}

	tests := []struct {
		name   string
		delta  geom.Vec
		aPoint geom.Vec
		aSize  geom.Vec
		bPoint geom.Vec
		bSize  geom.Vec
	}{
		{"one pixel", geom.V(1, 1), geom.V(0, 2.0/3), geom.V(301.0/3, 301.0/3), geom.V(200+2.0/3, 0), geom.V(301.0/3, 50.5)},
		{"double", geom.V(300, 100), geom.V(0, 0), geom.V(200, 200), geom.V(400, 0), geom.V(200, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := NewResize(reg, shapes, geom.HandleBottomRight).Step(tt.delta, input.Modifiers{})
			got := apply(shapes, step.Updates)
			if a := got["a"]; !a.Point.NearlyEqual(tt.aPoint, eps) || !a.Size.NearlyEqual(tt.aSize, eps) {
				t.Errorf("a = %v %v, want %v %v", a.Point, a.Size, tt.aPoint, tt.aSize)
			}
			if b := got["b"]; !b.Point.NearlyEqual(tt.bPoint, eps) || !b.Size.NearlyEqual(tt.bSize, eps) {
				t.Errorf("b = %v %v, want %v %v", b.Point, b.Size, tt.bPoint, tt.bSize)
			}
		})
	}
}

func TestResizeSnapshotOrigins(t *testing.T) {
	shapes := []document.Shape{box("a", 0, 0, 100, 100), box("b", 200, 0, 100, 50)}
	snaps := NewResize(reg, shapes, geom.HandleBottomRight).Snapshots()

	want := []struct{ origin, inner geom.Vec }{
		{geom.V(50.0/300, 0.5), geom.V(0, 1)},
		{geom.V(250.0/300, 0.25), geom.V(1, 0)},
	}
	for i, w := range want {
		if !snaps[i].TransformOrigin.NearlyEqual(w.origin, eps) {
			t.Errorf("%s transform origin = %v, want %v", snaps[i].Shape.ID, snaps[i].TransformOrigin, w.origin)
		}
		if !snaps[i].InnerTransformOrigin.NearlyEqual(w.inner, eps) {
			t.Errorf("%s inner origin = %v, want %v", snaps[i].Shape.ID, snaps[i].InnerTransformOrigin, w.inner)
		}
	}
}

func TestResizeAltIsSymmetric(t *testing.T) {
	shapes := []document.Shape{box("box1", 0, 0, 100, 100)}
	step := NewResize(reg, shapes, geom.HandleRight).Step(geom.V(10, 0), input.Modifiers{Alt: true})
	got := apply(shapes, step.Updates)["box1"]

	if !got.Point.NearlyEqual(geom.V(-10, 0), eps) || !got.Size.NearlyEqual(geom.V(120, 100), eps) {
		t.Errorf("got %v %v, want (-10,0) (120,100)", got.Point, got.Size)
	}
}

func TestResizeTextCannotFlip(t *testing.T) {
	txt := shape.TextKind{}.Default()
	txt.ID = "t"
	shapes := []document.Shape{txt}

	r := NewResize(reg, shapes, geom.HandleRight)
	start := r.Start()
	if p, ok := start["t"]; !ok || p.Autosize == nil || *p.Autosize {
		t.Fatalf("resize start should turn off autosize, got %+v", start)
	}

	step := r.Step(geom.V(-150, 0), input.Modifiers{})
	got := apply(shapes, step.Updates)["t"]
	if got.Scale != geom.V(1, 1) {
		t.Errorf("text scale = %v, want (1,1)", got.Scale)
	}
	if !got.Point.NearlyEqual(geom.V(-50, 0), eps) {
		t.Errorf("point = %v, want (-50,0)", got.Point)
	}
}

func TestResizeLineMapsHandles(t *testing.T) {
	line := shape.LineKind{}.Default()
	line.ID = "l"
	line.Point = geom.V(100, 320)
	line.Handles = []geom.Vec{geom.V(0, 80), geom.V(300, 0)}
	shapes := []document.Shape{line}

	step := NewResize(reg, shapes, geom.HandleRight).Step(geom.V(300, 0), input.Modifiers{})
	got := apply(shapes, step.Updates)["l"]
	if !got.Handles[0].NearlyEqual(geom.V(0, 80), eps) || !got.Handles[1].NearlyEqual(geom.V(600, 0), eps) {
		t.Errorf("stretched handles = %v", got.Handles)
	}

	step = NewResize(reg, shapes, geom.HandleRight).Step(geom.V(-600, 0), input.Modifiers{})
	got = apply(shapes, step.Updates)["l"]
	if !got.Handles[0].NearlyEqual(geom.V(300, 80), eps) || !got.Handles[1].NearlyEqual(geom.V(0, 0), eps) {
		t.Errorf("flipped handles = %v", got.Handles)
	}
	if !got.Point.NearlyEqual(geom.V(-200, 320), eps) {
		t.Errorf("flipped point = %v", got.Point)
	}
}

func TestResizeLineMirrors(t *testing.T) {
	line := shape.LineKind{}.Default()
	line.ID = "l"
	line.Handles = []geom.Vec{geom.V(0, 0), geom.V(100, 50)}
	shapes := []document.Shape{line}

	tests := []struct {
		name    string
		handle  geom.Handle
		delta   geom.Vec
		point   geom.Vec
		handles []geom.Vec
	}{
		{"across the left edge", geom.HandleRight, geom.V(-200, 0), geom.V(-100, 0), []geom.Vec{geom.V(100, 0), geom.V(0, 50)}},
		{"across both edges", geom.HandleBottomRight, geom.V(-200, -100), geom.V(-100, -50), []geom.Vec{geom.V(100, 50), geom.V(0, 0)}},
		{"no flip", geom.HandleRight, geom.V(100, 0), geom.V(0, 0), []geom.Vec{geom.V(0, 0), geom.V(200, 50)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := NewResize(reg, shapes, tt.handle).Step(tt.delta, input.Modifiers{})
			got := apply(shapes, step.Updates)["l"]
			if !got.Point.NearlyEqual(tt.point, eps) {
				t.Errorf("point = %v, want %v", got.Point, tt.point)
			}
			for i, h := range tt.handles {
				if !got.Handles[i].NearlyEqual(h, eps) {
					t.Errorf("handle %d = %v, want %v", i, got.Handles[i], h)
				}
			}
			if got.Scale != geom.V(1, 1) {
				t.Errorf("line scale = %v, want (1,1)", got.Scale)
			}
		})
	}
}

func TestResizeRevert(t *testing.T) {
	shapes := []document.Shape{box("box1", 5, 5, 100, 100)}
	r := NewResize(reg, shapes, geom.HandleTopLeft)
	moved := apply(shapes, r.Step(geom.V(40, 40), input.Modifiers{}).Updates)["box1"]
	back := moved.Merge(r.Revert()["box1"])
	if back.Point != shapes[0].Point || back.Size != shapes[0].Size {
		t.Errorf("revert gave %v %v", back.Point, back.Size)
	}
}

func TestResizeCursor(t *testing.T) {
	tests := []struct {
		h      geom.Handle
		sx, sy float64
		want   input.Cursor
	}{
		{geom.HandleTopLeft, 1, 1, input.CursorNwseResize},
		{geom.HandleTopLeft, -1, 1, input.CursorNeswResize},
		{geom.HandleTopLeft, -1, -1, input.CursorNwseResize},
		{geom.HandleTopRight, 1, -1, input.CursorNwseResize},
		{geom.HandleRight, -1, 1, input.CursorEwResize},
	}
	for _, tt := range tests {
		if got := ResizeCursor(tt.h, tt.sx, tt.sy); got != tt.want {
			t.Errorf("ResizeCursor(%s, %v, %v) = %s, want %s", tt.h, tt.sx, tt.sy, got, tt.want)
		}
	}
}

func TestTranslateDeltaAxisLock(t *testing.T) {
	o := geom.V(10, 10)
	if d := TranslateDelta(o, geom.V(30, 15), true); d != geom.V(20, 0) {
		t.Errorf("got %v, want (20,0)", d)
	}
	if d := TranslateDelta(o, geom.V(12, -20), true); d != geom.V(0, -30) {
		t.Errorf("got %v, want (0,-30)", d)
	}
	if d := TranslateDelta(o, geom.V(12, -20), false); d != geom.V(2, -30) {
		t.Errorf("got %v, want (2,-30)", d)
	}
}

func TestTranslateStepAndRevert(t *testing.T) {
	shapes := []document.Shape{box("a", 0, 0, 10, 10), box("b", 50, 50, 10, 10)}
	tr := NewTranslate(shapes)

	got := apply(shapes, tr.Step(geom.V(5, -5)))
	if got["a"].Point != geom.V(5, -5) || got["b"].Point != geom.V(55, 45) {
		t.Errorf("moved to %v and %v", got["a"].Point, got["b"].Point)
	}
	back := apply(shapes, tr.Revert())
	if back["b"].Point != geom.V(50, 50) {
		t.Errorf("revert gave %v", back["b"].Point)
	}
}

func TestRotateSingle(t *testing.T) {
	shapes := []document.Shape{box("box1", 0, 0, 100, 100)}
	r := NewRotate(reg, shapes, geom.V(150, 50))

	got := apply(shapes, r.Step(geom.V(50, 150), 0))["box1"]
	if math.Abs(got.Rotation-math.Pi/2) > eps {
		t.Errorf("rotation = %v, want pi/2", got.Rotation)
	}
	if !got.Point.NearlyEqual(geom.V(0, 0), eps) {
		t.Errorf("point = %v, want unchanged", got.Point)
	}
}

func TestRotateGroupAboutCommonCenter(t *testing.T) {
	shapes := []document.Shape{box("a", 0, 0, 10, 10), box("b", 90, 0, 10, 10)}
	r := NewRotate(reg, shapes, geom.V(100, 5))

	got := apply(shapes, r.Step(geom.V(0, 5), 0))
	if !got["a"].Point.NearlyEqual(geom.V(90, 0), eps) {
		t.Errorf("a moved to %v, want (90,0)", got["a"].Point)
	}
	if !got["b"].Point.NearlyEqual(geom.V(0, 0), eps) {
		t.Errorf("b moved to %v, want (0,0)", got["b"].Point)
	}
}

func TestRotateSnap(t *testing.T) {
	shapes := []document.Shape{box("box1", 0, 0, 100, 100)}
	r := NewRotate(reg, shapes, geom.V(150, 50))
	step := math.Pi / 12

	current := geom.V(100, 0).Rot(0.3).Add(geom.V(50, 50))
	if a := r.Angle(current, step); math.Abs(a-step) > eps {
		t.Errorf("snapped angle = %v, want %v", a, step)
	}
	if a := r.Angle(current, 0); math.Abs(a-0.3) > eps {
		t.Errorf("free angle = %v, want 0.3", a)
	}
}
