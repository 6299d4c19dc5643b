package shape

import (
	"math"

	"github.com/inamate/whiteboard/internal/document"
	"github.com/inamate/whiteboard/internal/geom"
)

var defaultStyle = document.Style{Fill: "#ffffff", Stroke: "#000000", StrokeWidth: 2, Opacity: 1}

// BoxKind is a rectangle described by point and size. Flips are recorded in
// the sign of the scale vector.
type BoxKind struct{}

func (BoxKind) Type() document.ShapeType { return document.ShapeTypeBox }

func (BoxKind) Capabilities() Capabilities {
	return Capabilities{CanResize: true, CanFlip: true, CanScale: true, CanChangeAspectRatio: true}
}

func (BoxKind) Default() document.Shape {
	return document.Shape{
		Type:  document.ShapeTypeBox,
		Size:  geom.V(100, 100),
		Scale: geom.V(1, 1),
		Style: defaultStyle,
	}
}

func (BoxKind) Bounds(s document.Shape) geom.Bounds {
	return geom.NewBounds(s.Point, s.Size)
}

func (BoxKind) OnResize(initial document.Shape, tr TransformRecord) document.Partial {
	return resizeBox(initial, tr)
}

// resizeBox moves and sizes a point/size shape to the record's bounds and
// flips its scale on the axes the record flips.
func resizeBox(initial document.Shape, tr TransformRecord) document.Partial {
	scale := initial.Scale
	if scale == (geom.Vec{}) {
		scale = geom.V(1, 1)
	}
	if tr.Scale.X < 0 {
		scale.X = -scale.X
	}
	if tr.Scale.Y < 0 {
		scale.Y = -scale.Y
	}
	return document.Partial{
		Point:    document.Ptr(tr.Bounds.Min()),
		Size:     document.Ptr(geom.V(math.Max(1, tr.Bounds.Width), math.Max(1, tr.Bounds.Height))),
		Scale:    &scale,
		Rotation: document.Ptr(tr.Rotation),
	}
}

// EllipseKind is an ellipse inscribed in its point/size box.
type EllipseKind struct{ BoxKind }

func (EllipseKind) Type() document.ShapeType { return document.ShapeTypeEllipse }

func (k EllipseKind) Default() document.Shape {
	s := k.BoxKind.Default()
	s.Type = document.ShapeTypeEllipse
	return s
}

// ImageKind keeps its aspect ratio unless clipped.
type ImageKind struct{ BoxKind }

func (ImageKind) Type() document.ShapeType { return document.ShapeTypeImage }

func (ImageKind) Capabilities() Capabilities {
	return Capabilities{CanResize: true, CanFlip: true, CanScale: true, CanChangeAspectRatio: false, CanClip: true}
}

func (k ImageKind) Default() document.Shape {
	s := k.BoxKind.Default()
	s.Type = document.ShapeTypeImage
	s.IsAspectRatioLocked = true
	s.Style = document.Style{Opacity: 1}
	return s
}

// TextKind is a text block. It cannot flip and stops autosizing once the
// user resizes it by hand.
type TextKind struct{}

func (TextKind) Type() document.ShapeType { return document.ShapeTypeText }

func (TextKind) Capabilities() Capabilities {
	return Capabilities{CanResize: true, CanFlip: false, CanScale: false, CanChangeAspectRatio: true}
}

func (TextKind) Default() document.Shape {
	return document.Shape{
		Type:     document.ShapeTypeText,
		Size:     geom.V(100, 32),
		Scale:    geom.V(1, 1),
		Autosize: true,
		Style:    defaultStyle,
	}
}

func (TextKind) Bounds(s document.Shape) geom.Bounds {
	return geom.NewBounds(s.Point, s.Size)
}

func (TextKind) OnResizeStart(s document.Shape, _ ResizeStartInfo) document.Partial {
	if !s.Autosize {
		return document.Partial{}
	}
	return document.Partial{Autosize: document.Ptr(false)}
}

func (TextKind) OnResize(initial document.Shape, tr TransformRecord) document.Partial {
	return resizeBox(initial, tr)
}

// LineKind is a polyline whose handles are stored relative to Point.
type LineKind struct{}

func (LineKind) Type() document.ShapeType { return document.ShapeTypeLine }

func (LineKind) Capabilities() Capabilities {
	return Capabilities{CanResize: true, CanFlip: true, CanScale: false, CanChangeAspectRatio: true}
}

func (LineKind) Default() document.Shape {
	return document.Shape{
		Type:    document.ShapeTypeLine,
		Scale:   geom.V(1, 1),
		Handles: []geom.Vec{{}, {}},
		Style:   document.Style{Stroke: "#000000", StrokeWidth: 2, Opacity: 1},
	}
}

func (LineKind) Bounds(s document.Shape) geom.Bounds {
	if len(s.Handles) == 0 {
		return geom.NewBounds(s.Point, geom.Vec{})
	}
	return geom.BoundsFromPoints(s.Handles...).Translate(s.Point)
}

// OnResize maps each handle from its normalized position in the initial
// handle bounds into the new bounds, mirrored on flipped axes.
func (LineKind) OnResize(initial document.Shape, tr TransformRecord) document.Partial {
	hb := geom.BoundsFromPoints(initial.Handles...)
	handles := make([]geom.Vec, len(initial.Handles))
	for i, h := range initial.Handles {
		n := geom.V(0, 0)
		if hb.Width != 0 {
			n.X = (h.X - hb.MinX) / hb.Width
		}
		if hb.Height != 0 {
			n.Y = (h.Y - hb.MinY) / hb.Height
		}
		if tr.FlipX {
			n.X = 1 - n.X
		}
		if tr.FlipY {
			n.Y = 1 - n.Y
		}
		handles[i] = n.MulV(tr.Bounds.Size())
	}
	return document.Partial{
		Point:    document.Ptr(tr.Bounds.Min()),
		Size:     document.Ptr(tr.Bounds.Size()),
		Handles:  handles,
		Rotation: document.Ptr(tr.Rotation),
	}
}
